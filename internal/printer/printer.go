// Package printer writes a stream of pi digits as "3.1415...", flushing the
// output at a fixed digit interval.
package printer

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/thruflo/pidigits/internal/logging"
)

// DigitSource yields decimal digits in order. The first digit is taken as
// the integer part. *spigot.Generator satisfies it.
type DigitSource interface {
	NextDigit() uint8
}

// termCounter is implemented by sources that can report how many
// continued-fraction terms they have consumed.
type termCounter interface {
	Terms() uint64
}

// Options controls a Print run.
type Options struct {
	// MaxDigits is the number of fractional digits written after "3.".
	MaxDigits int
	// FlushInterval is the number of fractional digits between flushes.
	FlushInterval int
	// TrailingNewline appends "\n" after the last digit.
	TrailingNewline bool
	// Logger receives per-flush debug messages. Defaults to logging.Default().
	Logger *logging.Logger
}

// Stats summarizes a Print run.
type Stats struct {
	// Digits counts fractional digits written, excluding the integer part.
	Digits int
	// Flushes counts flushes of the underlying writer.
	Flushes int
	// Terms is the source's term index after the run, or 0 if unknown.
	Terms uint64
}

// Print writes the integer digit, a decimal point and up to opts.MaxDigits
// fractional digits from src to w. It stops early, returning ctx.Err(),
// when ctx is cancelled; digits written so far are flushed first.
func Print(ctx context.Context, w io.Writer, src DigitSource, opts Options) (Stats, error) {
	if opts.FlushInterval <= 0 {
		return Stats{}, fmt.Errorf("flush interval must be positive, got %d", opts.FlushInterval)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	p := &run{bw: bufio.NewWriter(w), src: src, logger: logger}

	if err := p.writeDigit(src.NextDigit()); err != nil {
		return p.finish(err)
	}
	if err := p.bw.WriteByte('.'); err != nil {
		return p.finish(fmt.Errorf("failed to write output: %w", err))
	}

	for p.stats.Digits < opts.MaxDigits {
		if err := ctx.Err(); err != nil {
			if ferr := p.flush(); ferr != nil {
				return p.finish(ferr)
			}
			return p.finish(err)
		}

		if err := p.writeDigit(src.NextDigit()); err != nil {
			return p.finish(err)
		}
		p.stats.Digits++

		if p.stats.Digits%opts.FlushInterval == 0 {
			if err := p.flush(); err != nil {
				return p.finish(err)
			}
			logger.Debug("flushed", "digits", p.stats.Digits)
		}
	}

	if opts.TrailingNewline {
		if err := p.bw.WriteByte('\n'); err != nil {
			return p.finish(fmt.Errorf("failed to write output: %w", err))
		}
	}
	return p.finish(p.flush())
}

type run struct {
	bw     *bufio.Writer
	src    DigitSource
	logger *logging.Logger
	stats  Stats
}

func (p *run) writeDigit(d uint8) error {
	if d > 9 {
		return fmt.Errorf("source produced non-digit value %d", d)
	}
	if err := p.bw.WriteByte('0' + d); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// flush writes any buffered output. An empty buffer is not counted.
func (p *run) flush() error {
	if p.bw.Buffered() == 0 {
		return nil
	}
	if err := p.bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	p.stats.Flushes++
	return nil
}

func (p *run) finish(err error) (Stats, error) {
	if tc, ok := p.src.(termCounter); ok {
		p.stats.Terms = tc.Terms()
	}
	return p.stats, err
}
