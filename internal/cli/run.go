package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/pidigits/internal/config"
	"github.com/thruflo/pidigits/internal/logging"
	"github.com/thruflo/pidigits/internal/printer"
	"github.com/thruflo/pidigits/internal/profiling"
	"github.com/thruflo/pidigits/internal/spigot"
	"golang.org/x/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print digits of pi to stdout",
	Long: `Prints "3." followed by the requested number of fractional digits.

Output is flushed every --flush-interval digits so long runs show progress.
Interrupting the run stops it cleanly after the last digit written.

Example:
  pidigits run
  pidigits run -n 100000 --flush-interval 1000
  pidigits run --profile --profile-dir prof`,
	Args: cobra.NoArgs,
	RunE: runDigits,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDigits(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyLogLevel(cfg)

	logger := logging.With("cmd", "run")
	out := cmd.OutOrStdout()

	if cfg.Profiling.Enabled {
		session, err := profiling.Start(cfg.Profiling.Dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := session.Stop(); err != nil {
				logger.Warn("failed to write profiles", "error", err)
				return
			}
			logger.Info("profiles written", "dir", session.Dir())
		}()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "digits", cfg.Output.MaxDigits, "flush_interval", cfg.Output.FlushInterval)
	start := time.Now()

	stats, err := printer.Print(ctx, out, spigot.New(), printer.Options{
		MaxDigits:       cfg.Output.MaxDigits,
		FlushInterval:   cfg.Output.FlushInterval,
		TrailingNewline: wantNewline(cfg.Output.TrailingNewline, out),
		Logger:          logger,
	})
	elapsed := time.Since(start).Round(time.Millisecond)

	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted", "digits", stats.Digits, "elapsed", elapsed)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to print digits: %w", err)
	}

	logger.Info("done",
		"digits", stats.Digits,
		"flushes", stats.Flushes,
		"terms", stats.Terms,
		"elapsed", elapsed,
	)
	return nil
}

// wantNewline resolves the trailing newline mode. In auto mode a newline is
// written only when w is a terminal, keeping piped output byte-exact.
func wantNewline(mode string, w io.Writer) bool {
	switch mode {
	case config.NewlineAlways:
		return true
	case config.NewlineNever:
		return false
	}
	return isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
