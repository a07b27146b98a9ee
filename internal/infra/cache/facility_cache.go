// Package cache holds the Redis read-through cache of the facility directory.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"prepmap/config"
	"prepmap/internal/domain/entity"
	"prepmap/internal/domain/lifecycle"
	"prepmap/internal/domain/repository"
	"prepmap/internal/errors"
	"prepmap/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix  = "prepmap:facilities:"
	defaultTTL = 5 * time.Minute
	scanCount  = 100
)

// Store is the subset of the Redis API used by the cache.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// FacilityCache decorates a FacilityRepository with Redis. Redis failures are
// logged and the call falls through to the wrapped repository.
type FacilityCache struct {
	next    repository.FacilityRepository
	store   Store
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Collector
}

// NewFacilityCache wraps next with store.
func NewFacilityCache(next repository.FacilityRepository, store Store, ttl time.Duration, logger *slog.Logger, m *metrics.Collector) *FacilityCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &FacilityCache{next: next, store: store, ttl: ttl, logger: logger, metrics: m}
}

// Params holds dependencies for New. Repository is the uncached directory.
type Params struct {
	fx.In
	fx.Lifecycle

	Repository repository.FacilityRepository `name:"facilityStore"`
	Config     *config.Config
	Logger     *slog.Logger
	Metrics    *metrics.Collector `optional:"true"`
}

// Result exposes the facility directory seen by the rest of the service.
type Result struct {
	fx.Out

	Repository repository.FacilityRepository
	Purger     repository.FacilityCachePurger
}

type noopPurger struct{}

func (noopPurger) Purge(context.Context) error { return nil }

// New serves the facility repository through the cache when redis is
// enabled, and passes it through unchanged otherwise.
func New(params Params) (Result, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		return Result{Repository: params.Repository, Purger: noopPurger{}}, nil
	}
	if cfg.Addr == "" {
		return Result{}, errors.New("redis address is required when enabled")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				// the cache is optional: reads fall through while redis is down
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Facility cache enabled", slog.String("addr", cfg.Addr), slog.Duration("ttl", cfg.TTL))
	c := NewFacilityCache(params.Repository, client, cfg.TTL, params.Logger, params.Metrics)

	return Result{Repository: c, Purger: c}, nil
}

// FindByRegion serves the list from Redis when present.
func (c *FacilityCache) FindByRegion(ctx context.Context, regionID string) ([]*entity.Facility, error) {
	key := regionKey(regionID)

	var cached []*entity.Facility
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	facilities, err := c.next.FindByRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, facilities)

	return facilities, nil
}

// FindByID serves a single facility from Redis when present. Not-found results are not cached.
func (c *FacilityCache) FindByID(ctx context.Context, id int64) (*entity.Facility, error) {
	key := keyPrefix + "id:" + strconv.FormatInt(id, 10)

	var cached entity.Facility
	if c.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	facility, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.save(ctx, key, facility)

	return facility, nil
}

// Purge deletes every cached facility key.
func (c *FacilityCache) Purge(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := c.store.Scan(ctx, cursor, keyPrefix+"*", scanCount).Result()
		if err != nil {
			return errors.Wrap(err, "scan facility cache")
		}
		if len(keys) > 0 {
			if err := c.store.Del(ctx, keys...).Err(); err != nil {
				return errors.Wrap(err, "purge facility cache")
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (c *FacilityCache) lookup(ctx context.Context, key string, out any) bool {
	raw, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Facility cache read failed", slog.String("key", key), slog.Any("error", err))
		}
		c.metrics.CacheMiss()

		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.WarnContext(ctx, "Facility cache entry corrupt", slog.String("key", key), slog.Any("error", err))
		c.metrics.CacheMiss()

		return false
	}
	c.metrics.CacheHit()

	return true
}

func (c *FacilityCache) save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Facility cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func regionKey(regionID string) string {
	if regionID == "" {
		return keyPrefix + "region:_all"
	}

	return keyPrefix + "region:" + regionID
}
