// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// Well-known keys of the persisted collections.
const (
	KeyCatalog           = "woz_catalog"
	KeyUserProducts      = "woz_user_products"
	KeyVendors           = "woz_vendors"
	KeySuppliers         = "woz_suppliers"
	KeyCategories        = "woz_categories"
	PrefixSellerProfiles = "woz_seller_profiles/"
	PrefixComments       = "woz_product_comments/"
	PrefixDescriptions   = "woz_product_descriptions/"
	PrefixLogistics      = "woz_product_logistics/"
)

// WellKnownKeys lists every single-value key the application writes.
var WellKnownKeys = []string{
	KeyCatalog,
	KeyUserProducts,
	KeyVendors,
	KeySuppliers,
	KeyCategories,
}

// DerivedPrefixes lists every per-identifier cache collection.
var DerivedPrefixes = []string{
	PrefixSellerProfiles,
	PrefixComments,
	PrefixDescriptions,
	PrefixLogistics,
}

// KeyValueStore is the local-storage style persistence layer.
// Each key is read and written atomically; there is a single writer.
type KeyValueStore interface {
	// Get returns the raw value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Has reports whether key exists.
	Has(ctx context.Context, key string) (bool, error)

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists the keys starting with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases the underlying storage.
	Close() error
}
