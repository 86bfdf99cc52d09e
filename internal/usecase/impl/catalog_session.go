package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"wozmarket/config"
	"wozmarket/internal/domain/entity"
	"wozmarket/internal/errors"
	"wozmarket/internal/usecase"

	"github.com/google/uuid"
)

// catalogSession implements the CatalogSession interface.
type catalogSession struct {
	id        uuid.UUID
	catalog   usecase.CatalogUsecase
	pager     *Paginator
	debouncer *Debouncer
	country   string
	logger    *slog.Logger

	mu      sync.Mutex
	all     []entity.Product
	vendors []entity.Vendor
	filter  entity.FilterState
}

// NewCatalogSession is the constructor for catalogSession.
func NewCatalogSession(
	catalog usecase.CatalogUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogSession {
	id := uuid.New()
	filter := entity.DefaultFilterState()
	if cfg.Catalog.Country != "" {
		filter.Country = cfg.Catalog.Country
	}

	return &catalogSession{
		id:        id,
		catalog:   catalog,
		pager:     NewPaginator(cfg.Catalog.PageSize, cfg.Catalog.PromotedCount),
		debouncer: NewDebouncer(cfg.Catalog.Debounce),
		country:   filter.Country,
		logger:    logger.With(slog.String("session", id.String())),
		filter:    filter,
	}
}

// ID identifies the session in logs.
func (s *catalogSession) ID() uuid.UUID {
	return s.id
}

// Load fills the working copy and applies the current filter state.
func (s *catalogSession) Load(ctx context.Context) error {
	products, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return errors.Wrap(err, "load catalog")
	}
	vendors, err := s.catalog.Vendors(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.all = products
	s.vendors = vendors
	s.refilter()
	s.mu.Unlock()

	s.logger.Info("Session loaded", slog.Int("products", len(products)))

	return nil
}

// Filter returns the current filter state.
func (s *catalogSession) Filter() entity.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter
}

// SetFilter replaces the filter state and realizes the first batch.
func (s *catalogSession) SetFilter(f entity.FilterState) entity.RenderState {
	if f.Country == "" {
		f.Country = s.country
	}

	s.mu.Lock()
	s.filter = f
	s.refilter()
	s.mu.Unlock()

	return s.Render()
}

// SetQuery replaces the free-text query.
func (s *catalogSession) SetQuery(q string) entity.RenderState {
	s.mu.Lock()
	s.filter.Query = strings.TrimSpace(q)
	s.refilter()
	s.mu.Unlock()

	return s.Render()
}

// SetQueryDebounced applies q after the debounce delay unless a newer call supersedes it.
func (s *catalogSession) SetQueryDebounced(q string, onApplied func(entity.RenderState)) {
	s.debouncer.Do(func() {
		state := s.SetQuery(q)
		s.logger.Debug("Debounced query applied", slog.String("query", q), slog.Int("matches", len(state.Filtered)))
		if onApplied != nil {
			onApplied(state)
		}
	})
}

// refilter recomputes the filtered view, resets pagination and realizes the
// first batch. Callers hold s.mu.
func (s *catalogSession) refilter() {
	filtered := ApplyFilters(s.all, s.filter)
	SortProducts(filtered, s.filter.Sort)
	s.pager.Reset(filtered)
	s.pager.Advance()
}

// Advance realizes the next batch.
func (s *catalogSession) Advance() (entity.Batch, bool) {
	return s.pager.Advance()
}

// Render returns a snapshot of the working copy.
func (s *catalogSession) Render() entity.RenderState {
	s.mu.Lock()
	all := s.all
	s.mu.Unlock()

	filtered, rendered, state := s.pager.Snapshot()

	return entity.RenderState{
		AllProducts:   all,
		Filtered:      filtered,
		RenderedCount: rendered,
		State:         state,
	}
}

// Export writes every filtered record, realized or not, as CSV.
func (s *catalogSession) Export(w io.Writer) error {
	filtered, _, _ := s.pager.Snapshot()

	return ExportCSV(w, filtered)
}

// Submit adds a validated user listing to the store and the working copy.
func (s *catalogSession) Submit(ctx context.Context, input *entity.ProductInput) (*entity.Product, error) {
	p, err := s.catalog.SubmitProduct(ctx, input)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.all = append(s.all[:len(s.all):len(s.all)], *p)
	s.refilter()
	s.mu.Unlock()

	return p, nil
}

// Facets returns the filter option lists of the working copy.
func (s *catalogSession) Facets() entity.Facets {
	s.mu.Lock()
	defer s.mu.Unlock()

	return BuildFacets(s.all, s.vendors)
}

// Close cancels a pending debounced query.
func (s *catalogSession) Close() {
	s.debouncer.Stop()
}
