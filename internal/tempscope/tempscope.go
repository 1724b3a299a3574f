// Package tempscope provides a scoped temporary directory: acquired at
// the start of a run, guaranteed removed on every exit path (success or
// failure).
package tempscope

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Scope owns a directory tree that is deleted when Close is called.
// Callers should always `defer scope.Close()` immediately after Acquire
// succeeds, so no cleanup logic is scattered across the pipeline.
type Scope struct {
	dir string
}

// Acquire creates a fresh, uniquely named directory under parent (the OS
// default temp dir if parent is empty).
func Acquire(parent string) (*Scope, error) {
	if parent == "" {
		parent = os.TempDir()
	}
	dir := filepath.Join(parent, "splitmerge-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Scope{dir: dir}, nil
}

// Dir returns the directory path.
func (s *Scope) Dir() string { return s.dir }

// NewPath returns a path for a uniquely named file inside the scope,
// named prefix + a random UUID + suffix (e.g. "chunk_<uuid>.tmp").
func (s *Scope) NewPath(prefix, suffix string) string {
	return filepath.Join(s.dir, prefix+uuid.NewString()+suffix)
}

// Close removes the entire scoped directory tree. Safe to call more
// than once; subsequent calls are no-ops.
func (s *Scope) Close() error {
	if s.dir == "" {
		return nil
	}
	err := os.RemoveAll(s.dir)
	s.dir = ""
	return err
}
