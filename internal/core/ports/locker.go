package ports

import "context"

// CacheLocker serializes access to the shared on-disk package cache across
// independent OS processes. The lock is advisory; every cache mutation and
// installed-path probe happens under it.
//
//go:generate mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type CacheLocker interface {
	// Lock acquires the lock, blocking until it is held or ctx is done.
	// The returned function releases the lock and is safe to call exactly once.
	Lock(ctx context.Context) (unlock func(), err error)
}
