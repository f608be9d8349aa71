package lock

import (
	"context"
	"errors"
)

var ErrLockTimeout = errors.New("timed out waiting for lock")

// Locker serializes work per key. Lock blocks until the key is free or ctx
// is done; the returned func releases it and is safe to call once.
//
//go:generate mockery --name=Locker --dir=. --output=./mocks --filename=locker_mock.go --case=underscore
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}
