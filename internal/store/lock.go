package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nightlyone/lockfile"
)

// DirLock is a PID lock file that keeps a second server process from sharing
// the same documents.
type DirLock struct {
	lock lockfile.Lockfile
	path string
}

// AcquireDirLock takes the lock at path, creating its directory if needed.
// A lock left behind by a dead process is reclaimed.
func AcquireDirLock(path string) (*DirLock, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}
	lf, err := lockfile.New(abs)
	if err != nil {
		return nil, err
	}
	if err := lf.TryLock(); err != nil {
		return nil, fmt.Errorf("lock %s: %w", abs, err)
	}
	return &DirLock{lock: lf, path: abs}, nil
}

// Path is the absolute lock file path.
func (l *DirLock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Release removes the lock file.
func (l *DirLock) Release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
