package repository

import (
	"context"
)

// DerivedCache maps an identifier to a synthesized record computed once and
// persisted, so repeated views return the same values.
type DerivedCache[T any] interface {
	// GetOrCompute returns the cached value for id, or stores and returns compute().
	GetOrCompute(ctx context.Context, id string, compute func() (T, error)) (T, error)

	// Clear removes every entry of the collection.
	Clear(ctx context.Context) error
}
