// Package profiling captures a CPU profile for the duration of a run and a
// heap profile at its end, both in pprof format.
package profiling

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
)

// File names written under the profile directory.
const (
	CPUFile  = "cpu.pprof"
	HeapFile = "heap.pprof"
)

// Session is an active CPU profile.
type Session struct {
	dir     string
	cpu     *os.File
	stopped bool
}

// Start creates dir if needed and begins CPU profiling into dir/cpu.pprof.
// Only one Session may be active per process.
func Start(dir string) (*Session, error) {
	if dir == "" {
		return nil, errors.New("profile directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, CPUFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}

	return &Session{dir: dir, cpu: f}, nil
}

// Dir returns the directory profiles are written to.
func (s *Session) Dir() string {
	return s.dir
}

// Stop ends CPU profiling and writes the heap profile. Calling Stop more
// than once is a no-op.
func (s *Session) Stop() error {
	if s.stopped {
		return nil
	}
	s.stopped = true

	pprof.StopCPUProfile()
	if err := s.cpu.Close(); err != nil {
		return fmt.Errorf("failed to close cpu profile: %w", err)
	}

	f, err := os.Create(filepath.Join(s.dir, HeapFile))
	if err != nil {
		return fmt.Errorf("failed to create heap profile: %w", err)
	}
	defer f.Close()

	// Up-to-date allocation statistics.
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}
