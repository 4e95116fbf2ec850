// Package tempfile holds request-scoped files that must be deleted on every
// exit path. Acquire a Guard, then defer its Release.
package tempfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"syscall"
)

// Guard owns one file path until Release is called
type Guard struct {
	path string
	once sync.Once
	err  error
}

// Create makes an empty file in dir named after pattern (see os.CreateTemp).
// dir is created if missing.
func Create(dir, pattern string) (*Guard, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}

	f, err := os.CreateTemp(dir, pattern)
	if errors.Is(err, fs.ErrNotExist) {
		// dir was removed by a concurrent RemoveDirIfEmpty
		if err = os.MkdirAll(dir, 0755); err == nil {
			f, err = os.CreateTemp(dir, pattern)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	return &Guard{path: f.Name()}, nil
}

// Adopt takes ownership of an existing path
func Adopt(path string) *Guard {
	return &Guard{path: path}
}

// Path returns the guarded path
func (g *Guard) Path() string {
	if g == nil {
		return ""
	}
	return g.path
}

// Release deletes the file. A file that is already gone is not an error.
// Safe to call more than once and on a nil Guard.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	g.once.Do(func() {
		if err := os.Remove(g.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			g.err = err
		}
	})
	return g.err
}

// RemoveDirIfEmpty removes dir when it has no entries. A non-empty or
// missing directory is left alone without error.
func RemoveDirIfEmpty(dir string) error {
	err := os.Remove(dir)
	if err == nil || errors.Is(err, fs.ErrNotExist) || isNotEmpty(err) {
		return nil
	}
	return err
}

func isNotEmpty(err error) bool {
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		return false
	}
	return errors.Is(pe.Err, syscall.ENOTEMPTY) || errors.Is(pe.Err, syscall.EEXIST)
}
