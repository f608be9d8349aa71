package lock

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

type keyedSemaphore struct {
	sem  *semaphore.Weighted
	refs int
}

type memoryLocker struct {
	mu   sync.Mutex
	keys map[string]*keyedSemaphore
}

// NewMemoryLocker serializes work within one process.
func NewMemoryLocker() Locker {
	return &memoryLocker{keys: make(map[string]*keyedSemaphore)}
}

func (l *memoryLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	entry, ok := l.keys[key]
	if !ok {
		entry = &keyedSemaphore{sem: semaphore.NewWeighted(1)}
		l.keys[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	if err := entry.sem.Acquire(ctx, 1); err != nil {
		l.release(key, entry, false)
		return nil, fmt.Errorf("%w for %s: %v", ErrLockTimeout, key, err)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, entry, true) })
	}, nil
}

func (l *memoryLocker) release(key string, entry *keyedSemaphore, held bool) {
	if held {
		entry.sem.Release(1)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.keys, key)
	}
}
