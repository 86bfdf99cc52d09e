package impl

import (
	"context"
	"log/slog"

	deliverycontext "wozmarket/internal/delivery/context"
	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/domain/service"
	"wozmarket/internal/errors"
	"wozmarket/internal/infra/generator"
	"wozmarket/internal/usecase"
)

// DetailCaches groups the per-identifier caches behind the detail view.
type DetailCaches struct {
	Logistics    repository.DerivedCache[entity.Logistics]
	Sellers      repository.DerivedCache[entity.SellerProfile]
	Comments     repository.DerivedCache[[]entity.Comment]
	Descriptions repository.DerivedCache[string]
}

// detailService implements the DetailUsecase interface.
type detailService struct {
	repo   repository.CatalogRepository
	gen    *generator.Generator
	caches DetailCaches
	qr     service.QRCodeService
	now    service.Clock
	logger *slog.Logger
}

// NewDetailService is the constructor for detailService.
func NewDetailService(
	repo repository.CatalogRepository,
	gen *generator.Generator,
	caches DetailCaches,
	qr service.QRCodeService,
	now service.Clock,
	logger *slog.Logger,
) usecase.DetailUsecase {
	return &detailService{
		repo:   repo,
		gen:    gen,
		caches: caches,
		qr:     qr,
		now:    now,
		logger: logger,
	}
}

func (srv *detailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// find looks sku up in the user collection, then in the catalog snapshot.
func (srv *detailService) find(ctx context.Context, sku string) (*entity.Product, error) {
	userProducts, err := srv.repo.UserProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load user products")
	}
	for i := range userProducts {
		if userProducts[i].SKU == sku {
			return &userProducts[i], nil
		}
	}

	snapshot, _, err := srv.repo.Catalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog snapshot")
	}
	for i := range snapshot {
		if snapshot[i].SKU == sku {
			return &snapshot[i], nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrProductNotFound.WithDetails(sku))
}

// ResolveBySku returns the product with its synthesized presentation fields.
// The fields are computed on first view and reused afterwards.
func (srv *detailService) ResolveBySku(ctx context.Context, sku string) (*entity.ProductDetail, error) {
	p, err := srv.find(ctx, sku)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	logistics, err := srv.caches.Logistics.GetOrCompute(ctx, sku, func() (entity.Logistics, error) {
		return srv.gen.Logistics(p.Supplier, now), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "resolve logistics")
	}
	// The countdown and arrival day follow the clock; only the day count is fixed.
	logistics.DeliveryDate = now.AddDate(0, 0, logistics.DeliveryDays)

	seller, err := srv.caches.Sellers.GetOrCompute(ctx, p.Seller, func() (entity.SellerProfile, error) {
		return srv.gen.SellerProfile(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "resolve seller profile")
	}

	comments, err := srv.caches.Comments.GetOrCompute(ctx, sku, func() ([]entity.Comment, error) {
		return srv.gen.Comments(), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "resolve comments")
	}

	description, err := srv.caches.Descriptions.GetOrCompute(ctx, sku, func() (string, error) {
		return srv.gen.Description(p.Title, p.Description), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "resolve description")
	}

	srv.log(ctx).Debug("Product resolved", slog.String("sku", sku))

	return &entity.ProductDetail{
		Product:         *p,
		Description:     description,
		Logistics:       logistics,
		DeliveryMessage: generator.DeliveryMessage(logistics, now),
		Seller:          seller,
		Comments:        comments,
	}, nil
}

// Checkout returns the single-item order summary.
func (srv *detailService) Checkout(ctx context.Context, sku string) (*entity.CheckoutSummary, error) {
	p, err := srv.find(ctx, sku)
	if err != nil {
		return nil, err
	}

	return &entity.CheckoutSummary{
		SKU:            p.SKU,
		Title:          p.Title,
		PriceFormatted: entity.FormatPrice(p.Price),
		Total:          p.Price,
		TotalFormatted: entity.FormatPrice(p.Price),
	}, nil
}

// ShareQR returns the detail link of an existing product and its QR code.
func (srv *detailService) ShareQR(ctx context.Context, sku string) (string, []byte, error) {
	if _, err := srv.find(ctx, sku); err != nil {
		return "", nil, err
	}

	png, err := srv.qr.GenerateProductQR(sku)
	if err != nil {
		return "", nil, errors.Wrap(err, "generate share qr")
	}

	return srv.qr.ProductLink(sku), png, nil
}

// ParseShareLink extracts the sku from a detail link.
func (srv *detailService) ParseShareLink(link string) (string, error) {
	return srv.qr.ParseProductLink(link)
}
