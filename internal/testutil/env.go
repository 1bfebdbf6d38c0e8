package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDir creates a temporary directory containing .pidigits/config.yaml
// with the given contents. An empty configYAML creates the directory only.
// Returns the temp directory path.
func SetupTestDir(t *testing.T, configYAML string) string {
	t.Helper()

	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, ".pidigits")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	if configYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configYAML), 0o644))
	}
	return tmpDir
}

// WriteTestFile writes content to a file relative to basePath, creating
// parent directories as needed.
func WriteTestFile(t *testing.T, basePath, relativePath string, content []byte) {
	t.Helper()

	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, content, 0o644))
}
