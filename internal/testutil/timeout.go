package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTestBuffer is subtracted from the test deadline so a long digit run
// stops before the test binary is killed.
const DefaultTestBuffer = 5 * time.Second

// ContextWithTestDeadline returns a context that ends DefaultTestBuffer
// before the test deadline, or after fallback when the test has none.
//
// Usage:
//
//	ctx, cancel := testutil.ContextWithTestDeadline(t, time.Minute)
//	defer cancel()
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if time.Until(adjusted) > 0 {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}
	return context.WithTimeout(context.Background(), fallback)
}
