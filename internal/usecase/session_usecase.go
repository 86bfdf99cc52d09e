package usecase

import (
	"context"
	"io"

	"wozmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogSession defines the interface for one browsing session over the catalog.
// It owns the working copy, the filter state and the pagination cursor.
type CatalogSession interface {
	// ID identifies the session in logs
	ID() uuid.UUID

	// Load fills the working copy and applies the default filter state
	Load(ctx context.Context) error

	// Filter returns the current filter state
	Filter() entity.FilterState

	// SetFilter recomputes the filtered view, resets pagination and realizes the first batch
	SetFilter(f entity.FilterState) entity.RenderState

	// SetQuery replaces the free-text query immediately
	SetQuery(q string) entity.RenderState

	// SetQueryDebounced schedules a query change; a later call cancels a pending one.
	// onApplied runs only for the change that is eventually applied
	SetQueryDebounced(q string, onApplied func(entity.RenderState))

	// Advance realizes the next batch; it reports false once the view is complete
	Advance() (entity.Batch, bool)

	// Render returns a snapshot of the working copy
	Render() entity.RenderState

	// Export writes the filtered view as CSV
	Export(w io.Writer) error

	// Submit adds a user listing to the working copy and the store
	Submit(ctx context.Context, input *entity.ProductInput) (*entity.Product, error)

	// Facets returns the filter option lists of the working copy
	Facets() entity.Facets

	// Close cancels pending debounced work
	Close()
}
