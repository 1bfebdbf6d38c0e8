package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thruflo/pidigits/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultMaxDigits       = 5000
	DefaultFlushInterval   = 100
	DefaultTrailingNewline = NewlineAuto
	DefaultProfilingDir    = "profiling"
	DefaultLogLevel        = "warn"
)

// DirName is the directory, relative to the base path, holding config.yaml.
const DirName = ".pidigits"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Output: Output{
			MaxDigits:       DefaultMaxDigits,
			FlushInterval:   DefaultFlushInterval,
			TrailingNewline: DefaultTrailingNewline,
		},
		Profiling: Profiling{
			Dir: DefaultProfilingDir,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the location of config.yaml under basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, DirName, "config.yaml")
}

// LoadConfig reads and parses .pidigits/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
func LoadConfig(basePath string) (*Config, error) {
	return load(Path(basePath), true)
}

// LoadConfigFile reads and parses the config file at path. Unlike
// LoadConfig, a missing file is an error.
func LoadConfigFile(path string) (*Config, error) {
	return load(path, false)
}

func load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && optional {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields absent from the file keep their defaults.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Output.MaxDigits < 0 {
		return ValidationError{Field: "output.max_digits", Message: "must not be negative"}
	}
	if cfg.Output.FlushInterval <= 0 {
		return ValidationError{Field: "output.flush_interval", Message: "must be positive"}
	}
	switch cfg.Output.TrailingNewline {
	case NewlineAuto, NewlineAlways, NewlineNever:
	default:
		return ValidationError{
			Field:   "output.trailing_newline",
			Message: fmt.Sprintf("must be one of %s, %s, %s", NewlineAuto, NewlineAlways, NewlineNever),
		}
	}
	if cfg.Profiling.Enabled && cfg.Profiling.Dir == "" {
		return ValidationError{Field: "profiling.dir", Message: "required when profiling is enabled"}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
