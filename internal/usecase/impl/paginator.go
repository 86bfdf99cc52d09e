package impl

import (
	"sync"

	"wozmarket/internal/domain/entity"
)

const (
	defaultPageSize      = 20
	defaultPromotedCount = 5
)

// Paginator realizes a filtered view batch by batch (infinite scroll).
// Advance may be signalled repeatedly; once the view is complete it is a no-op.
type Paginator struct {
	mu            sync.Mutex
	pageSize      int
	promotedCount int
	items         []entity.Product
	rendered      int
}

// NewPaginator creates a paginator; non-positive sizes fall back to 20 and 5.
func NewPaginator(pageSize, promotedCount int) *Paginator {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if promotedCount <= 0 {
		promotedCount = defaultPromotedCount
	}

	return &Paginator{pageSize: pageSize, promotedCount: promotedCount}
}

// Reset discards realized output and switches to a new filtered view.
func (p *Paginator) Reset(items []entity.Product) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.items = items
	p.rendered = 0
}

// Advance realizes the next batch. A promoted first record makes the first
// batch the promoted group; later batches end on page boundaries.
func (p *Paginator) Advance() (entity.Batch, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := len(p.items)
	if p.rendered >= total {
		return entity.Batch{}, false
	}

	promoted := p.rendered == 0 && p.items[0].Promoted
	end := min(total, (p.rendered/p.pageSize+1)*p.pageSize)
	if promoted {
		end = min(total, p.promotedCount)
	}

	batch := entity.Batch{
		Start:    p.rendered,
		Items:    p.items[p.rendered:end:end],
		Promoted: promoted,
	}
	p.rendered = end

	return batch, true
}

// State returns Empty, Partial or Complete.
func (p *Paginator) State() entity.PageState {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state()
}

func (p *Paginator) state() entity.PageState {
	switch {
	case p.rendered == 0:
		return entity.PageEmpty
	case p.rendered < len(p.items):
		return entity.PagePartial
	default:
		return entity.PageComplete
	}
}

// Rendered returns the count of realized records.
func (p *Paginator) Rendered() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.rendered
}

// Snapshot returns the filtered view, the realized count and the state together.
func (p *Paginator) Snapshot() ([]entity.Product, int, entity.PageState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.items, p.rendered, p.state()
}
