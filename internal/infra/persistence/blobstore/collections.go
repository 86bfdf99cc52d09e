package blobstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/errors"
)

// collections implements repository.CatalogRepository as JSON documents in a KeyValueStore.
type collections struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewCatalogRepository is the constructor for the typed collections.
func NewCatalogRepository(store repository.KeyValueStore, logger *slog.Logger) repository.CatalogRepository {
	return &collections{
		store:  store,
		logger: logger,
	}
}

// Vendors returns the vendor collection, seeding it if absent.
func (c *collections) Vendors(ctx context.Context, seed func() ([]entity.Vendor, error)) ([]entity.Vendor, error) {
	return loadOrSeed(ctx, c, repository.KeyVendors, seed)
}

// Suppliers returns the supplier collection, seeding it if absent.
func (c *collections) Suppliers(ctx context.Context, seed func() ([]string, error)) ([]string, error) {
	return loadOrSeed(ctx, c, repository.KeySuppliers, seed)
}

// Categories returns the category collection, seeding it if absent.
func (c *collections) Categories(ctx context.Context, seed func() ([]string, error)) ([]string, error) {
	return loadOrSeed(ctx, c, repository.KeyCategories, seed)
}

// UserProducts returns the user-submitted products (empty when absent or malformed).
func (c *collections) UserProducts(ctx context.Context) ([]entity.Product, error) {
	products, _, err := read[[]entity.Product](ctx, c, repository.KeyUserProducts)
	if err != nil {
		return nil, err
	}
	normalize(products)

	return products, nil
}

// SaveUserProducts overwrites the user-submitted products.
func (c *collections) SaveUserProducts(ctx context.Context, products []entity.Product) error {
	return write(ctx, c, repository.KeyUserProducts, products)
}

// Catalog returns the persisted catalog snapshot and whether a valid one exists.
func (c *collections) Catalog(ctx context.Context) ([]entity.Product, bool, error) {
	products, ok, err := read[[]entity.Product](ctx, c, repository.KeyCatalog)
	if err != nil || !ok {
		return nil, false, err
	}
	normalize(products)

	return products, true, nil
}

// SaveCatalog overwrites the catalog snapshot.
func (c *collections) SaveCatalog(ctx context.Context, products []entity.Product) error {
	return write(ctx, c, repository.KeyCatalog, products)
}

// Reset clears every collection and every derived cache entry.
func (c *collections) Reset(ctx context.Context) error {
	keys := append([]string(nil), repository.WellKnownKeys...)
	for _, prefix := range repository.DerivedPrefixes {
		derived, err := c.store.Keys(ctx, prefix)
		if err != nil {
			return err
		}
		keys = append(keys, derived...)
	}

	for _, key := range keys {
		if err := c.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	c.logger.Info("Store reset", slog.Int("keys", len(keys)))

	return nil
}

// loadOrSeed returns the collection under key. When the key is absent, holds
// malformed JSON or decodes to an empty collection, seed is called and its
// result written back.
func loadOrSeed[T any](ctx context.Context, c *collections, key string, seed func() ([]T, error)) ([]T, error) {
	value, ok, err := read[[]T](ctx, c, key)
	if err != nil {
		return nil, err
	}
	if ok && len(value) > 0 {
		return value, nil
	}

	value, err = seed()
	if err != nil {
		return nil, errors.Wrapf(err, "seed %s", key)
	}
	if err := write(ctx, c, key, value); err != nil {
		return nil, err
	}
	c.logger.Debug("Collection seeded", slog.String("key", key), slog.Bool("was_empty", ok))

	return value, nil
}

// read decodes the JSON document under key. A malformed document is logged
// and reported as absent.
func read[T any](ctx context.Context, c *collections, key string) (T, bool, error) {
	var value T

	raw, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return value, false, err
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		c.logger.Warn("Discarding malformed stored data",
			slog.String("key", key),
			slog.Any("error", domainerrors.ErrMalformedStoredData.WithDetails(err.Error())),
		)

		var zero T

		return zero, false, nil
	}

	return value, true, nil
}

func write[T any](ctx context.Context, c *collections, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}

	return c.store.Set(ctx, key, raw)
}

// normalize re-establishes priceFormatted == FormatPrice(price).
func normalize(products []entity.Product) {
	for i := range products {
		products[i].Normalize()
	}
}
