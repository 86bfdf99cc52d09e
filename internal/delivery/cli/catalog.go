package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"wozmarket/internal/domain/entity"
	"wozmarket/internal/errors"
	"wozmarket/internal/usecase/impl"
)

// searchSettle bounds the wait for a debounced query past its delay.
const searchSettle = 2 * time.Second

type filterFlags struct {
	query        *string
	category     *string
	supplier     *string
	seller       *string
	price        *string
	minRating    *string
	sort         *string
	country      *string
	hideInternal *bool
}

func bindFilterFlags(fs *flag.FlagSet) *filterFlags {
	return &filterFlags{
		query:        fs.String("q", "", "Free-text query over title, seller and category"),
		category:     fs.String("category", "", "Exact category"),
		supplier:     fs.String("supplier", "", "Exact supplier"),
		seller:       fs.String("seller", "", "Exact seller"),
		price:        fs.String("price", "", "Price range as min-max; either bound may be empty"),
		minRating:    fs.String("min-rating", "", "Minimum rating (0-5)"),
		sort:         fs.String("sort", string(entity.SortRelevance), "Order: relevance, price_low, price_high, rating_high"),
		country:      fs.String("country", "", "Shipping country"),
		hideInternal: fs.Bool("hide-internal", false, "Hide products sourced by the internal supplier"),
	}
}

// filterState builds the filter state; unusable filter tokens mean no constraint.
func (r *Runner) filterState(ff *filterFlags) entity.FilterState {
	f := entity.DefaultFilterState()
	f.Query = *ff.query
	f.Category = *ff.category
	f.Supplier = *ff.supplier
	f.Seller = *ff.seller
	f.MinRating = impl.ParseMinRating(*ff.minRating)
	f.Sort = entity.SortOrder(*ff.sort)
	f.IncludeInternal = !*ff.hideInternal
	f.Country = *ff.country
	if f.Country == "" {
		f.Country = r.cfg.Catalog.Country
	}

	priceRange, err := impl.ParsePriceRange(*ff.price)
	if err != nil {
		r.logger.Warn("Ignoring price filter", slog.String("price", *ff.price), slog.Any("error", err))
	} else {
		f.PriceRange = priceRange
	}

	return f
}

func (r *Runner) loadFiltered(ctx context.Context, ff *filterFlags) (entity.RenderState, error) {
	if err := r.session.Load(ctx); err != nil {
		return entity.RenderState{}, err
	}

	return r.session.SetFilter(r.filterState(ff)), nil
}

func (r *Runner) handleList(ctx context.Context, args []string) error {
	fs := r.newFlagSet("list")
	ff := bindFilterFlags(fs)
	pages := fs.Int("pages", 1, "Number of batches to realize")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := r.loadFiltered(ctx, ff)
	if err != nil {
		return err
	}
	for i := 1; i < *pages; i++ {
		if _, ok := r.session.Advance(); !ok {
			break
		}
	}
	if *pages > 1 {
		state = r.session.Render()
	}

	r.printProducts(state)

	return nil
}

func (r *Runner) handleSearch(ctx context.Context, args []string) error {
	fs := r.newFlagSet("search")
	ff := bindFilterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	queries := fs.Args()
	if len(queries) == 0 {
		return errors.New("search needs at least one query")
	}

	if _, err := r.loadFiltered(ctx, ff); err != nil {
		return err
	}

	applied := make(chan entity.RenderState, 1)
	for _, q := range queries {
		r.session.SetQueryDebounced(q, func(state entity.RenderState) {
			select {
			case applied <- state:
			default:
			}
		})
	}

	select {
	case state := <-applied:
		r.printProducts(state)

		return nil
	case <-time.After(r.cfg.Catalog.Debounce + searchSettle):
		return errors.New("search query was never applied")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) handleExport(ctx context.Context, args []string) error {
	fs := r.newFlagSet("export")
	ff := bindFilterFlags(fs)
	dir := fs.String("dir", r.cfg.Export.Dir, "Output directory; '-' writes to stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := r.loadFiltered(ctx, ff); err != nil {
		return err
	}

	if *dir == "-" {
		return r.session.Export(r.out)
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return errors.Wrap(err, "create export directory")
	}
	path := filepath.Join(*dir, impl.ExportFilename(r.now()))
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	if err := writeAndClose(f, r.session.Export); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Exportado: %s (%d productos)\n", path, len(r.session.Render().Filtered))

	return nil
}

// writeAndClose runs write against wc, then closes it. A failed close is
// reported unless write already failed.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) error {
	if err := write(wc); err != nil {
		_ = wc.Close()

		return err
	}

	return errors.Wrap(wc.Close(), "close export file")
}

func (r *Runner) handleSubmit(ctx context.Context, args []string) error {
	fs := r.newFlagSet("submit")
	input := &entity.ProductInput{}
	fs.StringVar(&input.Title, "title", "", "Product title")
	fs.StringVar(&input.Category, "category", "", "Category")
	fs.StringVar(&input.Supplier, "supplier", "", "Supplier")
	fs.StringVar(&input.Seller, "seller", "", "Seller name")
	fs.Int64Var(&input.Price, "price", 0, "Price in guaraníes")
	fs.Float64Var(&input.Rating, "rating", 5, "Rating (1-5)")
	fs.StringVar(&input.Description, "description", "", "Description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := r.session.Submit(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "Producto publicado: %s %s (%s)\n", p.SKU, p.Title, p.PriceFormatted)

	return nil
}

func (r *Runner) handleFacets(ctx context.Context, args []string) error {
	fs := r.newFlagSet("facets")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := r.session.Load(ctx); err != nil {
		return err
	}

	r.printFacets(r.session.Facets())

	return nil
}

func (r *Runner) handleReset(ctx context.Context, args []string) error {
	fs := r.newFlagSet("reset")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := r.catalog.Reset(ctx); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "Almacenamiento borrado.")

	return nil
}
