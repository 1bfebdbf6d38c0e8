package profiling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/pidigits/internal/spigot"
)

// Not parallel: the runtime allows one CPU profile at a time.

func TestStartStop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiling")

	s, err := Start(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	g := spigot.New()
	for range 200 {
		g.NextDigit()
	}

	require.NoError(t, s.Stop())
	require.NoError(t, s.Stop(), "second Stop should be a no-op")

	for _, name := range []string{CPUFile, HeapFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestStart_EmptyDir(t *testing.T) {
	_, err := Start("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile directory is required")
}

func TestStart_AlreadyProfiling(t *testing.T) {
	s, err := Start(t.TempDir())
	require.NoError(t, err)
	defer s.Stop()

	_, err = Start(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start cpu profile")
}

func TestStart_DirIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := Start(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create profile directory")
}
