package repository

import (
	"context"

	"wozmarket/internal/domain/entity"
)

// CatalogRepository exposes the typed JSON collections of the store.
// Seeding accessors write the seed only when the collection is absent or
// malformed; plain readers fall back to an empty collection.
type CatalogRepository interface {
	// Vendors returns the vendor collection, seeding it if absent.
	Vendors(ctx context.Context, seed func() ([]entity.Vendor, error)) ([]entity.Vendor, error)

	// Suppliers returns the supplier collection, seeding it if absent.
	Suppliers(ctx context.Context, seed func() ([]string, error)) ([]string, error)

	// Categories returns the category collection, seeding it if absent.
	Categories(ctx context.Context, seed func() ([]string, error)) ([]string, error)

	// UserProducts returns the user-submitted products (empty when absent).
	UserProducts(ctx context.Context) ([]entity.Product, error)

	// SaveUserProducts overwrites the user-submitted products.
	SaveUserProducts(ctx context.Context, products []entity.Product) error

	// Catalog returns the persisted merged catalog snapshot and whether it exists.
	Catalog(ctx context.Context) ([]entity.Product, bool, error)

	// SaveCatalog overwrites the merged catalog snapshot.
	SaveCatalog(ctx context.Context, products []entity.Product) error

	// Reset clears every collection and derived cache.
	Reset(ctx context.Context) error
}
