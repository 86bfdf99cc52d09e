// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sort"

	"wozmarket/config"
	deliverycontext "wozmarket/internal/delivery/context"
	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/errors"
	"wozmarket/internal/infra/generator"
	"wozmarket/internal/usecase"
)

// InputValidator checks user input against its struct tags.
type InputValidator interface {
	Validate(i any) error
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	repo      repository.CatalogRepository
	gen       *generator.Generator
	validator InputValidator
	cfg       *config.CatalogConfig
	logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	repo repository.CatalogRepository,
	gen *generator.Generator,
	validator InputValidator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		repo:      repo,
		gen:       gen,
		validator: validator,
		cfg:       cfg.Catalog,
		logger:    logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BuildCatalog generates, merges, orders and persists the catalog snapshot.
func (srv *catalogService) BuildCatalog(ctx context.Context, count int, userRecords []entity.Product) ([]entity.Product, error) {
	if count < 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidRange.WithDetails("negative product count"))
	}

	vendors, err := srv.Vendors(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := srv.repo.Suppliers(ctx, func() ([]string, error) {
		return srv.gen.Suppliers(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load suppliers")
	}
	categories, err := srv.repo.Categories(ctx, func() ([]string, error) {
		return srv.gen.Categories(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load categories")
	}

	taken := make(map[int]struct{}, len(userRecords))
	for _, p := range userRecords {
		if n, ok := entity.ParseSKU(p.SKU); ok {
			taken[n] = struct{}{}
		}
	}

	generated, err := srv.generate(count, taken, vendors, suppliers, categories)
	if err != nil {
		return nil, err
	}

	merged := make([]entity.Product, 0, len(userRecords)+len(generated))
	for _, p := range userRecords {
		p.Normalize()
		merged = append(merged, p)
	}
	merged = append(merged, generated...)
	OrderCatalog(merged)

	if err := srv.repo.SaveCatalog(ctx, merged); err != nil {
		return nil, errors.Wrap(err, "save catalog snapshot")
	}

	srv.log(ctx).Info("Catalog built",
		slog.Int("generated", len(generated)),
		slog.Int("user", len(userRecords)),
	)

	return merged, nil
}

// generate numbers products from 1 upwards, skipping the sku numbers in taken.
func (srv *catalogService) generate(
	count int,
	taken map[int]struct{},
	vendors []entity.Vendor,
	suppliers, categories []string,
) ([]entity.Product, error) {
	sellers := entity.VendorNames(vendors)

	products := make([]entity.Product, 0, count)
	next := 0
	for i := 1; i <= count; i++ {
		next = nextFree(next, taken)

		supplier, err := generator.PickOne(srv.gen.Source(), suppliers)
		if err != nil {
			return nil, errors.Wrap(err, "pick supplier")
		}
		seller, err := generator.PickOne(srv.gen.Source(), sellers)
		if err != nil {
			return nil, errors.Wrap(err, "pick seller")
		}
		category, err := generator.PickOne(srv.gen.Source(), categories)
		if err != nil {
			return nil, errors.Wrap(err, "pick category")
		}

		p := entity.Product{
			SKU:      entity.FormatSKU(next),
			Title:    srv.gen.GenerateTitle(),
			Category: category,
			Supplier: supplier,
			Seller:   seller,
			Price:    srv.gen.GeneratePrice(),
			Rating:   srv.gen.GenerateRating(),
			Reviews:  srv.gen.GenerateReviews(),
			Promoted: i <= srv.cfg.PromotedCount,
		}
		p.Normalize()
		products = append(products, p)
	}

	return products, nil
}

// OrderCatalog sorts products in place: promoted first, then rating
// descending, then price ascending. Equal keys keep their order.
func OrderCatalog(products []entity.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if a.Promoted != b.Promoted {
			return a.Promoted
		}
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}

		return a.Price < b.Price
	})
}

// LoadCatalog returns the reusable snapshot, or builds a fresh one over the
// persisted user products.
func (srv *catalogService) LoadCatalog(ctx context.Context) ([]entity.Product, error) {
	if srv.cfg.ReuseSnapshot {
		snapshot, ok, err := srv.repo.Catalog(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "load catalog snapshot")
		}
		if ok && len(snapshot) > 0 {
			srv.log(ctx).Debug("Reusing catalog snapshot", slog.Int("count", len(snapshot)))

			return snapshot, nil
		}
	}

	userProducts, err := srv.repo.UserProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load user products")
	}

	return srv.BuildCatalog(ctx, srv.cfg.TotalProducts, userProducts)
}

// Vendors returns the persisted vendor list, seeding it from the generator on first use.
func (srv *catalogService) Vendors(ctx context.Context) ([]entity.Vendor, error) {
	vendors, err := srv.repo.Vendors(ctx, func() ([]entity.Vendor, error) {
		return srv.gen.Vendors(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load vendors")
	}

	return vendors, nil
}

// SubmitProduct validates a listing, numbers it after the highest known sku
// and persists it. Numbering starts past the generated range so a later
// rebuild cannot hand the same sku to a generated product.
func (srv *catalogService) SubmitProduct(ctx context.Context, input *entity.ProductInput) (*entity.Product, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	userProducts, err := srv.repo.UserProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load user products")
	}
	snapshot, _, err := srv.repo.Catalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog snapshot")
	}

	p := entity.Product{
		SKU:         entity.FormatSKU(max(maxSKU(userProducts, snapshot), srv.cfg.TotalProducts) + 1),
		Title:       input.Title,
		Category:    input.Category,
		Supplier:    input.Supplier,
		Seller:      input.Seller,
		Price:       input.Price,
		Rating:      input.Rating,
		Description: input.Description,
	}
	p.Normalize()

	if err := srv.repo.SaveUserProducts(ctx, append(userProducts, p)); err != nil {
		return nil, errors.Wrap(err, "save user products")
	}
	if err := srv.repo.SaveCatalog(ctx, append(snapshot, p)); err != nil {
		return nil, errors.Wrap(err, "save catalog snapshot")
	}

	srv.log(ctx).Info("Product submitted", slog.String("sku", p.SKU), slog.String("seller", p.Seller))

	return &p, nil
}

// Reset clears every persisted collection and derived cache.
func (srv *catalogService) Reset(ctx context.Context) error {
	return errors.Wrap(srv.repo.Reset(ctx), "reset store")
}

// nextFree returns the lowest sku number above n not in taken.
func nextFree(n int, taken map[int]struct{}) int {
	for {
		n++
		if _, ok := taken[n]; !ok {
			return n
		}
	}
}

func maxSKU(collections ...[]entity.Product) int {
	highest := 0
	for _, products := range collections {
		for _, p := range products {
			if n, ok := entity.ParseSKU(p.SKU); ok && n > highest {
				highest = n
			}
		}
	}

	return highest
}
