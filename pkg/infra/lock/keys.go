package lock

import (
	"context"
	"time"
)

// ObjectKey serializes mutating actions on one object across both workflows.
func ObjectKey(object string) string {
	return "object:" + object
}

func SessionKey(kind, id string) string {
	return kind + ":" + id
}

// Acquire waits at most timeout for key. A non-positive timeout waits as long
// as ctx allows.
func Acquire(ctx context.Context, locker Locker, key string, timeout time.Duration) (func(), error) {
	if timeout <= 0 {
		return locker.Lock(ctx, key)
	}
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return locker.Lock(lockCtx, key)
}
