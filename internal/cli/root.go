package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/pidigits/internal/config"
	"github.com/thruflo/pidigits/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	rootConfigPath    string
	rootDir           string
	rootLogLevel      string
	rootVerbose       bool
	rootMaxDigits     int
	rootFlushInterval int
	rootNewline       string
	rootProfile       bool
	rootProfileDir    string
)

var rootCmd = &cobra.Command{
	Use:   "pidigits",
	Short: "Print the decimal digits of pi",
	Long: `pidigits prints pi as "3.1415..." using an exact streaming spigot, so
any number of digits can be requested without choosing a precision up front.

Without a subcommand it behaves like "pidigits run".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDigits,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("pidigits version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootConfigPath, "config", "", "config file (default: <dir>/.pidigits/config.yaml)")
	pf.StringVar(&rootDir, "dir", ".", "base directory containing .pidigits/")
	pf.StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVarP(&rootVerbose, "verbose", "v", false, "log at info level")
	pf.IntVarP(&rootMaxDigits, "digits", "n", config.DefaultMaxDigits, "number of fractional digits to print")
	pf.IntVar(&rootFlushInterval, "flush-interval", config.DefaultFlushInterval, "digits between output flushes")
	pf.StringVar(&rootNewline, "newline", config.DefaultTrailingNewline, "trailing newline: auto, always, never")
	pf.BoolVar(&rootProfile, "profile", false, "write cpu and heap profiles")
	pf.StringVar(&rootProfileDir, "profile-dir", config.DefaultProfilingDir, "directory for profiles")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file selected by --config or --dir and applies
// any flags the user set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if rootConfigPath != "" {
		cfg, err = config.LoadConfigFile(rootConfigPath)
	} else {
		cfg, err = config.LoadConfig(rootDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("digits") {
		cfg.Output.MaxDigits = rootMaxDigits
	}
	if flags.Changed("flush-interval") {
		cfg.Output.FlushInterval = rootFlushInterval
	}
	if flags.Changed("newline") {
		cfg.Output.TrailingNewline = rootNewline
	}
	if flags.Changed("profile") {
		cfg.Profiling.Enabled = rootProfile
	}
	if flags.Changed("profile-dir") {
		cfg.Profiling.Dir = rootProfileDir
	}
	if rootVerbose {
		cfg.Log.Level = "info"
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = rootLogLevel
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyLogLevel configures the default logger from a validated config.
func applyLogLevel(cfg *config.Config) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return
	}
	logging.SetLevel(level)
}
