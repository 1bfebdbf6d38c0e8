package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/pidigits/internal/testutil"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	// Create temp directory without config file
	tmpDir := t.TempDir()

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxDigits, cfg.Output.MaxDigits)
	assert.Equal(t, DefaultFlushInterval, cfg.Output.FlushInterval)
	assert.Equal(t, NewlineAuto, cfg.Output.TrailingNewline)
	assert.False(t, cfg.Profiling.Enabled)
	assert.Equal(t, DefaultProfilingDir, cfg.Profiling.Dir)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := testutil.SetupTestDir(t, `output:
  max_digits: 250
  flush_interval: 10
  trailing_newline: always
profiling:
  enabled: true
  dir: prof
log:
  level: debug
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.Output.MaxDigits)
	assert.Equal(t, 10, cfg.Output.FlushInterval)
	assert.Equal(t, NewlineAlways, cfg.Output.TrailingNewline)
	assert.True(t, cfg.Profiling.Enabled)
	assert.Equal(t, "prof", cfg.Profiling.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	// Only set max_digits, rest should keep defaults
	tmpDir := testutil.SetupTestDir(t, `output:
  max_digits: 42
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Output.MaxDigits)
	assert.Equal(t, DefaultFlushInterval, cfg.Output.FlushInterval)
	assert.Equal(t, DefaultTrailingNewline, cfg.Output.TrailingNewline)
	assert.Equal(t, DefaultProfilingDir, cfg.Profiling.Dir)
}

func TestLoadConfig_ZeroDigitsAllowed(t *testing.T) {
	t.Parallel()

	tmpDir := testutil.SetupTestDir(t, "output:\n  max_digits: 0\n")

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Output.MaxDigits)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := testutil.SetupTestDir(t, `output: [`)

	_, err := LoadConfig(tmpDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "negative max_digits",
			content: "output:\n  max_digits: -1\n",
			field:   "output.max_digits",
		},
		{
			name:    "zero flush_interval",
			content: "output:\n  flush_interval: 0\n",
			field:   "output.flush_interval",
		},
		{
			name:    "unknown trailing_newline",
			content: "output:\n  trailing_newline: sometimes\n",
			field:   "output.trailing_newline",
		},
		{
			name:    "profiling without dir",
			content: "profiling:\n  enabled: true\n  dir: \"\"\n",
			field:   "profiling.dir",
		},
		{
			name:    "unknown log level",
			content: "log:\n  level: loud\n",
			field:   "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := testutil.SetupTestDir(t, tt.content)

			_, err := LoadConfig(tmpDir)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected ValidationError, got %T", err)

			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  flush_interval: 7\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Output.FlushInterval)
	assert.Equal(t, DefaultMaxDigits, cfg.Output.MaxDigits)
}

func TestLoadConfigFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("base", ".pidigits", "config.yaml"), Path("base"))
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	data, err := Marshal(&cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "max_digits: 5000")
	assert.Contains(t, out, "flush_interval: 100")
	assert.Contains(t, out, "trailing_newline: auto")

	var decoded Config
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := ValidationError{Field: "output.max_digits", Message: "must not be negative"}
	assert.Equal(t, "validation error: output.max_digits: must not be negative", err.Error())
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidationError(ValidationError{Field: "x", Message: "y"}))
	assert.False(t, IsValidationError(os.ErrNotExist))
	assert.False(t, IsValidationError(nil))
}
