package library

import (
	"fmt"

	"github.com/gofrs/flock"

	"scriptdesk/internal/config"
)

// WriteLock serializes library imports across processes.
type WriteLock struct {
	path string
	lock *flock.Flock
}

// AcquireWriteLock takes the import lock next to the library database. It
// fails fast with ErrLocked instead of waiting.
func AcquireWriteLock(cfg *config.Config) (*WriteLock, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	path := cfg.LockPath()
	l := &WriteLock{path: path, lock: flock.New(path)}
	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (%s)", ErrLocked, path)
	}
	return l, nil
}

// Path returns the lock file location.
func (l *WriteLock) Path() string {
	return l.path
}

// Release drops the lock.
func (l *WriteLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
