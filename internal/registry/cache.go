package registry

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const batchCacheKeyPrefix = "registry:batch:"

// CachedStore is a Redis read-through decorator around a registry Store.
// Registry data changes rarely, so lookups are served from cache when
// possible. Redis trouble must never turn an available registry into a
// failure: cache errors are logged and the lookup falls through.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedStore wraps inner with a Redis cache. The TTL bounds staleness for
// recall-flag updates.
func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *CachedStore) FindByCode(ctx context.Context, batchCode string) (*Batch, error) {
	key := batchCacheKeyPrefix + batchCode

	raw, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		var batch Batch
		if err := json.Unmarshal(raw, &batch); err == nil {
			return &batch, nil
		}
		// Corrupt cache entry; drop it and fall through to the store.
		_ = s.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		s.logger.WarnContext(ctx, "registry cache read failed", "batch_code", batchCode, "error", err)
	}

	batch, err := s.inner.FindByCode(ctx, batchCode)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(batch); err == nil {
		if err := s.client.Set(ctx, key, encoded, s.ttl).Err(); err != nil {
			s.logger.WarnContext(ctx, "registry cache write failed", "batch_code", batchCode, "error", err)
		}
	}
	return batch, nil
}

// Save writes through to the inner store and invalidates the cached entry so
// recall flags take effect within one lookup rather than one TTL.
func (s *CachedStore) Save(ctx context.Context, batch *Batch) error {
	if err := s.inner.Save(ctx, batch); err != nil {
		return err
	}
	if err := s.client.Del(ctx, batchCacheKeyPrefix+batch.BatchCode).Err(); err != nil {
		s.logger.WarnContext(ctx, "registry cache invalidation failed", "batch_code", batch.BatchCode, "error", err)
	}
	return nil
}

func (s *CachedStore) List(ctx context.Context) ([]*Batch, error) {
	return s.inner.List(ctx)
}
