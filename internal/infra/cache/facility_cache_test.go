package cache

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"prepmap/internal/domain/entity"
	mockRepo "prepmap/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store; failing makes every command error.
type fakeStore struct {
	data    map[string]string
	ttls    map[string]time.Duration
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if s.failing {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (s *fakeStore) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if s.failing {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	switch v := value.(type) {
	case []byte:
		s.data[key] = string(v)
	case string:
		s.data[key] = v
	}
	s.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func (s *fakeStore) Scan(_ context.Context, _ uint64, match string, _ int64) *redis.ScanCmd {
	prefix := strings.TrimSuffix(match, "*")
	var keys []string
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}

	return redis.NewScanCmdResult(keys, 0, nil)
}

func (s *fakeStore) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(s.data, k)
	}

	return redis.NewIntResult(int64(len(keys)), nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFacilityCache_ReadThrough(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockFacilityRepository(t)
	store := newFakeStore()
	c := NewFacilityCache(repo, store, time.Minute, discardLogger(), nil)

	want := []*entity.Facility{{ID: 10, Name: "Koforidua Regional Hospital", RegionID: "EASTERN", StockStatus: entity.StockAvailable}}
	repo.EXPECT().FindByRegion(ctx, "EASTERN").Return(want, nil).Once()

	got, err := c.FindByRegion(ctx, "EASTERN")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Minute, store.ttls[keyPrefix+"region:EASTERN"])

	// second read is served from the store; the mock allows one call only
	again, err := c.FindByRegion(ctx, "EASTERN")
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestFacilityCache_ErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockFacilityRepository(t)
	store := newFakeStore()
	c := NewFacilityCache(repo, store, 0, discardLogger(), nil)

	repo.EXPECT().FindByRegion(ctx, "VOLTA").Return(nil, errors.New("db down")).Once()
	_, err := c.FindByRegion(ctx, "VOLTA")
	assert.Error(t, err)
	assert.Empty(t, store.data)
}

func TestFacilityCache_StoreFailureFallsThrough(t *testing.T) {
	ctx := context.Background()
	repo := mockRepo.NewMockFacilityRepository(t)
	store := newFakeStore()
	store.failing = true
	c := NewFacilityCache(repo, store, time.Minute, discardLogger(), nil)

	facility := &entity.Facility{ID: 3, Name: "Komfo Anokye Teaching Hospital"}
	repo.EXPECT().FindByID(ctx, int64(3)).Return(facility, nil).Twice()

	for range 2 {
		got, err := c.FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, facility, got)
	}
}

func TestFacilityCache_Purge(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.data[keyPrefix+"region:EASTERN"] = "[]"
	store.data[keyPrefix+"id:1"] = "{}"
	store.data["unrelated"] = "x"
	c := NewFacilityCache(mockRepo.NewMockFacilityRepository(t), store, time.Minute, discardLogger(), nil)

	require.NoError(t, c.Purge(ctx))
	assert.Equal(t, map[string]string{"unrelated": "x"}, store.data)
}

func TestRegionKey(t *testing.T) {
	assert.Equal(t, "prepmap:facilities:region:OTI", regionKey("OTI"))
	assert.Equal(t, "prepmap:facilities:region:_all", regionKey(""))
}
