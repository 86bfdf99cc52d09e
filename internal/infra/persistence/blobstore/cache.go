package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/errors"

	"golang.org/x/sync/singleflight"
)

// Cache is a DerivedCache storing one JSON document per identifier under a
// key prefix, fronted by an in-process memo.
type Cache[T any] struct {
	store  repository.KeyValueStore
	prefix string
	logger *slog.Logger

	group singleflight.Group

	mu   sync.RWMutex
	memo map[string]T
}

var _ repository.DerivedCache[struct{}] = (*Cache[struct{}])(nil)

// NewCache creates a cache over the keys starting with prefix.
func NewCache[T any](store repository.KeyValueStore, prefix string, logger *slog.Logger) *Cache[T] {
	return &Cache[T]{
		store:  store,
		prefix: prefix,
		logger: logger,
		memo:   make(map[string]T),
	}
}

// GetOrCompute returns the stored value for id. On a miss compute runs once,
// even under concurrent callers, and its result is persisted.
func (c *Cache[T]) GetOrCompute(ctx context.Context, id string, compute func() (T, error)) (T, error) {
	c.mu.RLock()
	v, ok := c.memo[id]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.group.Do(id, func() (any, error) {
		if v, ok, err := c.load(ctx, id); err != nil || ok {
			if ok {
				c.remember(id, v)
			}

			return v, err
		}

		v, err := compute()
		if err != nil {
			return v, errors.Wrapf(err, "compute %s%s", c.prefix, id)
		}
		if err := c.save(ctx, id, v); err != nil {
			return v, err
		}
		c.remember(id, v)

		return v, nil
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return res.(T), nil
}

// Clear removes every entry of the collection.
func (c *Cache[T]) Clear(ctx context.Context) error {
	keys, err := c.store.Keys(ctx, c.prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := c.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.memo = make(map[string]T)
	c.mu.Unlock()

	return nil
}

func (c *Cache[T]) load(ctx context.Context, id string) (T, bool, error) {
	var v T

	raw, ok, err := c.store.Get(ctx, c.prefix+id)
	if err != nil || !ok {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		c.logger.Warn("Discarding malformed cache entry",
			slog.String("key", c.prefix+id),
			slog.Any("error", domainerrors.ErrMalformedStoredData.WithDetails(err.Error())),
		)

		var zero T

		return zero, false, nil
	}

	return v, true, nil
}

func (c *Cache[T]) save(ctx context.Context, id string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s%s", c.prefix, id)
	}

	return c.store.Set(ctx, c.prefix+id, raw)
}

func (c *Cache[T]) remember(id string, v T) {
	c.mu.Lock()
	c.memo[id] = v
	c.mu.Unlock()
}
