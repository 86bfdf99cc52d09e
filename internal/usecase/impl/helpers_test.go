package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wozmarket/config"
	"wozmarket/internal/domain/entity"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/infra/generator"
	"wozmarket/internal/infra/persistence/blobstore"
	"wozmarket/internal/infra/qrcode"
	"wozmarket/internal/infra/random"
	"wozmarket/internal/infra/validator"
	"wozmarket/internal/usecase"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.October, 14, 18, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := config.Default()
	cfg.Catalog.Seed = 42
	cfg.Catalog.Debounce = 20 * time.Millisecond

	return cfg
}

// testEnv wires the services over an in-memory store.
type testEnv struct {
	cfg     *config.Config
	store   repository.KeyValueStore
	repo    repository.CatalogRepository
	gen     *generator.Generator
	catalog usecase.CatalogUsecase
	detail  usecase.DetailUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := newTestConfig()
	logger := newDiscardLogger()

	store, err := blobstore.Open(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	repo := blobstore.NewCatalogRepository(store, logger)
	gen, err := generator.NewDefault(random.New(cfg.Catalog.Seed))
	require.NoError(t, err)

	caches := DetailCaches{
		Logistics:    blobstore.NewCache[entity.Logistics](store, repository.PrefixLogistics, logger),
		Sellers:      blobstore.NewCache[entity.SellerProfile](store, repository.PrefixSellerProfiles, logger),
		Comments:     blobstore.NewCache[[]entity.Comment](store, repository.PrefixComments, logger),
		Descriptions: blobstore.NewCache[string](store, repository.PrefixDescriptions, logger),
	}

	return &testEnv{
		cfg:     cfg,
		store:   store,
		repo:    repo,
		gen:     gen,
		catalog: NewCatalogService(repo, gen, validator.New(), cfg, logger),
		detail: NewDetailService(repo, gen, caches, qrcode.NewFromConfig(cfg),
			func() time.Time { return fixedNow }, logger),
	}
}

// sampleProducts returns n products with descending ratings and skus 1..n.
func sampleProducts(n int) []entity.Product {
	products := make([]entity.Product, 0, n)
	for i := 1; i <= n; i++ {
		p := entity.Product{
			SKU:      entity.FormatSKU(i),
			Title:    "Producto",
			Category: "Cámaras",
			Supplier: "Amazon",
			Seller:   "Ana Vera",
			Price:    int64(1000 * i),
			Rating:   5 - float64(i%40)/10,
			Promoted: i <= 5,
		}
		p.Normalize()
		products = append(products, p)
	}

	return products
}

func skus(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.SKU)
	}

	return out
}
