package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/cache"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanSessionRepository_SaveAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewScanSessionRepository(cache.NewClientFromRedis(db), 30*time.Minute)

	session := scan.NewSession("s-1", "User", []scan.Field{{Field: "email", Type: "string"}}, 30*time.Minute)
	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("maskflow:scan_session:s-1", string(data), 30*time.Minute).SetVal("OK")
	require.NoError(t, repo.Save(context.Background(), session))

	mock.ExpectGet("maskflow:scan_session:s-1").SetVal(string(data))
	loaded, err := repo.Get(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "User", loaded.Object)
	assert.Equal(t, scan.StateIdle, loaded.State)
	assert.Equal(t, session.Fields, loaded.Fields)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanSessionRepository_GetMissing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewScanSessionRepository(cache.NewClientFromRedis(db), time.Minute)

	mock.ExpectGet("maskflow:scan_session:gone").RedisNil()

	_, err := repo.Get(context.Background(), "gone")
	assert.True(t, domain.IsNotFoundError(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScanSessionRepository_GetRedisError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewScanSessionRepository(cache.NewClientFromRedis(db), time.Minute)

	mock.ExpectGet("maskflow:scan_session:s-1").SetErr(errors.New("connection refused"))

	_, err := repo.Get(context.Background(), "s-1")
	require.Error(t, err)
	assert.False(t, domain.IsNotFoundError(err))
	assert.NotErrorIs(t, err, redis.Nil)
}

func TestScanSessionRepository_GetCorrupt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewScanSessionRepository(cache.NewClientFromRedis(db), time.Minute)

	mock.ExpectGet("maskflow:scan_session:s-1").SetVal("{")

	_, err := repo.Get(context.Background(), "s-1")
	assert.ErrorContains(t, err, "failed to unmarshal scan_session")
}

func TestReviewSessionRepository_RoundTripKeepsEdits(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewReviewSessionRepository(cache.NewClientFromRedis(db), 0)

	table := &masking.Table{
		Columns: masking.FixedColumns,
		Records: []masking.Record{
			{ID: "001", IsMasked: masking.StatusToBeMasked},
			{ID: "002", IsMasked: masking.StatusToBeMasked},
		},
	}
	session := masking.NewReviewSession("r-1", "User", "SELECT Id FROM User", table, time.Hour)
	noMask := masking.StatusNoMask
	retry := true
	require.NoError(t, session.Apply([]masking.RecordEdit{
		{ID: "001", IsMasked: &noMask},
		{ID: "002", Retry: &retry},
	}))
	data, err := json.Marshal(session)
	require.NoError(t, err)

	mock.ExpectSet("maskflow:review_session:r-1", string(data), DefaultSessionTTL).SetVal("OK")
	require.NoError(t, repo.Save(context.Background(), session))

	mock.ExpectGet("maskflow:review_session:r-1").SetVal(string(data))
	loaded, err := repo.Get(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"001"}, loaded.ExemptionCandidates())
	assert.Equal(t, []string{"002"}, loaded.RetryCandidates())

	mock.ExpectDel("maskflow:review_session:r-1").SetVal(1)
	require.NoError(t, repo.Delete(context.Background(), "r-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
