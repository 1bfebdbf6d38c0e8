package config

// Output controls how digits are written.
type Output struct {
	MaxDigits       int    `yaml:"max_digits"`
	FlushInterval   int    `yaml:"flush_interval"`
	TrailingNewline string `yaml:"trailing_newline"`
}

// Profiling controls optional CPU and heap profile capture.
type Profiling struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// Log controls diagnostic logging on stderr.
type Log struct {
	Level string `yaml:"level"`
}

// Config represents the .pidigits/config.yaml file.
type Config struct {
	Output    Output    `yaml:"output"`
	Profiling Profiling `yaml:"profiling"`
	Log       Log       `yaml:"log"`
}

// Trailing newline modes.
const (
	NewlineAuto   = "auto"
	NewlineAlways = "always"
	NewlineNever  = "never"
)
