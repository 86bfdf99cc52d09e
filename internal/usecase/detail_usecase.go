package usecase

import (
	"context"

	"wozmarket/internal/domain/entity"
)

// DetailUsecase defines the interface for the detail and checkout views
type DetailUsecase interface {
	// ResolveBySku looks a product up (user collection first) and attaches its
	// cached presentation fields
	ResolveBySku(ctx context.Context, sku string) (*entity.ProductDetail, error)

	// Checkout returns the single-item order summary for sku
	Checkout(ctx context.Context, sku string) (*entity.CheckoutSummary, error)

	// ShareQR returns the detail link of sku and its PNG QR code
	ShareQR(ctx context.Context, sku string) (link string, png []byte, err error)

	// ParseShareLink extracts the sku from a detail link
	ParseShareLink(link string) (string, error)
}
