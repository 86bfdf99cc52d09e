package usecase

import (
	"context"

	"wozmarket/internal/domain/entity"
)

// CatalogUsecase defines the interface for building and extending the catalog
type CatalogUsecase interface {
	// BuildCatalog generates count products, places userRecords first, orders the
	// merged set (promoted, rating desc, price asc) and persists it as the snapshot
	BuildCatalog(ctx context.Context, count int, userRecords []entity.Product) ([]entity.Product, error)

	// LoadCatalog returns the session catalog, reusing a persisted snapshot when configured
	LoadCatalog(ctx context.Context) ([]entity.Product, error)

	// SubmitProduct validates a user listing and appends it to the user collection and the snapshot
	SubmitProduct(ctx context.Context, input *entity.ProductInput) (*entity.Product, error)

	// Vendors returns the seller directory with ratings, seeding it on first use
	Vendors(ctx context.Context) ([]entity.Vendor, error)

	// Reset clears every persisted collection and derived cache
	Reset(ctx context.Context) error
}
