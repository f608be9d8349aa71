package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLocker_SerializesSameKey(t *testing.T) {
	locker := NewMemoryLocker()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), "review:User")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Empty(t, locker.(*memoryLocker).keys, "idle keys are released")
}

func TestMemoryLocker_IndependentKeys(t *testing.T) {
	locker := NewMemoryLocker()

	unlockUser, err := locker.Lock(context.Background(), "review:User")
	require.NoError(t, err)
	defer unlockUser()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	unlockLead, err := locker.Lock(ctx, "review:Lead")
	require.NoError(t, err)
	unlockLead()
}

func TestMemoryLocker_ContextTimeout(t *testing.T) {
	locker := NewMemoryLocker()

	unlock, err := locker.Lock(context.Background(), "scan:s1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, "scan:s1")
	assert.ErrorIs(t, err, ErrLockTimeout)

	unlock()
	unlock()

	again, err := locker.Lock(context.Background(), "scan:s1")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, logrus.New(), time.Second).(*redisLocker)
	locker.newToken = func() string { return "token-1" }
	locker.poll = time.Millisecond

	mock.ExpectSetNX("maskflow:lock:review:User", "token-1", time.Second).SetVal(false)
	mock.ExpectSetNX("maskflow:lock:review:User", "token-1", time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{"maskflow:lock:review:User"}, "token-1").SetVal(int64(1))

	unlock, err := locker.Lock(context.Background(), "review:User")
	require.NoError(t, err)
	unlock()

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_Renew(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, logrus.New(), time.Second).(*redisLocker)

	mock.ExpectEval(renewScript, []string{"maskflow:lock:review:User"}, "token-1", int64(1000)).SetVal(int64(1))
	mock.ExpectEval(renewScript, []string{"maskflow:lock:review:User"}, "token-1", int64(1000)).SetVal(int64(0))

	held, err := locker.renew("maskflow:lock:review:User", "token-1")
	require.NoError(t, err)
	assert.True(t, held)

	held, err = locker.renew("maskflow:lock:review:User", "token-1")
	require.NoError(t, err)
	assert.False(t, held, "another holder owns the key")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_KeepAliveStopsWhenLost(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, logrus.New(), time.Second).(*redisLocker)
	locker.renewEvery = 5 * time.Millisecond

	mock.ExpectEval(renewScript, []string{"maskflow:lock:scan:s1"}, "token-1", int64(1000)).SetVal(int64(0))

	done := make(chan struct{})
	go func() {
		locker.keepAlive("maskflow:lock:scan:s1", "token-1", make(chan struct{}))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("keepAlive kept running after the lock was lost")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_RedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, logrus.New(), time.Second).(*redisLocker)
	locker.newToken = func() string { return "token-1" }

	mock.ExpectSetNX("maskflow:lock:scan:s1", "token-1", time.Second).SetErr(errors.New("connection reset"))

	_, err := locker.Lock(context.Background(), "scan:s1")
	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, ErrLockTimeout)
}

func TestRedisLocker_Timeout(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, logrus.New(), time.Second).(*redisLocker)
	locker.newToken = func() string { return "token-1" }
	locker.poll = 50 * time.Millisecond

	mock.ExpectSetNX("maskflow:lock:scan:s1", "token-1", time.Second).SetVal(false)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := locker.Lock(ctx, "scan:s1")
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestAcquire_Timeout(t *testing.T) {
	locker := NewMemoryLocker()
	unlock, err := locker.Lock(context.Background(), ObjectKey("User"))
	require.NoError(t, err)
	defer unlock()

	_, err = Acquire(context.Background(), locker, ObjectKey("User"), 20*time.Millisecond)

	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.Equal(t, "scan_session:abc", SessionKey("scan_session", "abc"))
}
