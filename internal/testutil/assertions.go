package testutil

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertDigitsMatchPi asserts that digits is a prefix of PiDigits.
func AssertDigitsMatchPi(t *testing.T, digits []uint8) {
	t.Helper()

	require.LessOrEqual(t, len(digits), len(PiDigits), "more digits than the reference holds")
	assert.Equal(t, ReferenceDigits(len(digits)), digits)
}

// AssertPrintedPi asserts that output is "3." followed by the given number
// of fractional digits, and that those digits agree with PiDigits as far as
// the reference reaches.
func AssertPrintedPi(t *testing.T, output string, fractional int) {
	t.Helper()

	output = strings.TrimSuffix(output, "\n")
	require.True(t, strings.HasPrefix(output, "3."), "output should start with 3.: %q", head(output))

	frac := output[2:]
	require.Len(t, frac, fractional, "fractional digit count mismatch")

	n := min(len(frac), len(PiDigits)-1)
	assert.Equal(t, PiDigits[1:1+n], frac[:n])
	for i, c := range frac {
		if c < '0' || c > '9' {
			t.Fatalf("non-digit %q at fractional position %d", c, i)
		}
	}
}

// AssertDigit asserts that n is in [0, 9].
func AssertDigit(t *testing.T, n *big.Int) {
	t.Helper()
	require.NotNil(t, n, "digit is nil")
	assert.True(t, n.Sign() >= 0 && n.Cmp(big.NewInt(9)) <= 0, "digit out of range: %s", n)
}

func head(s string) string {
	if len(s) > 16 {
		return s[:16] + "..."
	}
	return s
}
