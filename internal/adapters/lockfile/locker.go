// Package lockfile implements the CacheLocker port with an advisory
// file lock, serializing cache mutation across processes.
package lockfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.trai.ch/refset/internal/core/domain"
	"go.trai.ch/zerr"
)

// retryDelay is the poll interval while waiting for a contended lock.
const retryDelay = 50 * time.Millisecond

// Locker guards the shared cache root with a lock file next to it.
type Locker struct {
	path string
}

// NewLocker creates a locker over the lock file for the given cache root.
func NewLocker(cacheRoot string) (*Locker, error) {
	if err := os.MkdirAll(cacheRoot, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheCreateFailed.Error())
	}
	return &Locker{path: domain.LockFilePath(cacheRoot)}, nil
}

// Lock blocks until the advisory lock is held or ctx is done. The returned
// function releases the lock; release failures only affect other waiters and
// are swallowed.
func (l *Locker) Lock(ctx context.Context) (func(), error) {
	fl := flock.New(l.path)
	locked, err := fl.TryLockContext(ctx, retryDelay)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, zerr.Wrap(err, domain.ErrLockFailed.Error())
	}
	if !locked {
		return nil, zerr.With(domain.ErrLockFailed, "path", l.path)
	}
	return func() { _ = fl.Unlock() }, nil
}

// Path returns the lock file location, primarily for diagnostics.
func (l *Locker) Path() string {
	return filepath.Clean(l.path)
}
