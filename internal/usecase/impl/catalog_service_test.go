package impl

import (
	"context"
	"encoding/json"
	"testing"

	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/repository"
	"wozmarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalog(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	products, err := env.catalog.BuildCatalog(ctx, 50, nil)
	require.NoError(t, err)
	require.Len(t, products, 50)

	promoted := 0
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		_, dup := seen[p.SKU]
		assert.False(t, dup)
		seen[p.SKU] = struct{}{}

		n, ok := entity.ParseSKU(p.SKU)
		require.True(t, ok)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 50)

		assert.Equal(t, entity.FormatPrice(p.Price), p.PriceFormatted)
		assert.Empty(t, p.Description)
		assert.GreaterOrEqual(t, p.Reviews, 5)
		if p.Promoted {
			promoted++
			assert.LessOrEqual(t, n, 5, "only the first generated records are promoted")
		}
	}
	assert.Equal(t, 5, promoted)

	for i := 1; i < len(products); i++ {
		a, b := products[i-1], products[i]
		switch {
		case a.Promoted != b.Promoted:
			assert.True(t, a.Promoted)
		case a.Rating != b.Rating:
			assert.Greater(t, a.Rating, b.Rating)
		default:
			assert.LessOrEqual(t, a.Price, b.Price)
		}
	}

	snapshot, ok, err := env.repo.Catalog(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, products, snapshot)
}

func TestBuildCatalog_FewerThanPromotedCount(t *testing.T) {
	env := newTestEnv(t)

	products, err := env.catalog.BuildCatalog(context.Background(), 3, nil)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.Promoted)
	}

	empty, err := env.catalog.BuildCatalog(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBuildCatalog_NegativeCount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.BuildCatalog(context.Background(), -1, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRange))
}

func TestBuildCatalog_UserRecordsFirstOnTies(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := entity.Product{SKU: "woz-sku-9000", Title: "Mate", Seller: "Ana Vera", Price: 1, Rating: 5}
	products, err := env.catalog.BuildCatalog(ctx, 20, []entity.Product{user})
	require.NoError(t, err)
	require.Len(t, products, 21)

	// Promoted generated records lead; the user record heads the rest.
	assert.Equal(t, "woz-sku-9000", products[5].SKU)
	assert.Equal(t, "Gs. 1", products[5].PriceFormatted)
}

func TestBuildCatalog_ReusesSeededCollections(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.store.Set(ctx, repository.KeySuppliers, []byte(`["Proveedor único"]`)))

	products, err := env.catalog.BuildCatalog(ctx, 10, nil)
	require.NoError(t, err)
	for _, p := range products {
		assert.Equal(t, "Proveedor único", p.Supplier)
	}
}

func TestBuildCatalog_EmptyStoredCollection(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty array", raw: `[]`},
		{name: "null", raw: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			require.NoError(t, env.store.Set(ctx, repository.KeyCategories, []byte(tt.raw)))

			products, err := env.catalog.BuildCatalog(ctx, 10, nil)
			require.NoError(t, err)
			require.Len(t, products, 10)
			for _, p := range products {
				assert.NotEmpty(t, p.Category)
			}

			var stored []string
			raw, ok, err := env.store.Get(ctx, repository.KeyCategories)
			require.NoError(t, err)
			require.True(t, ok)
			require.NoError(t, json.Unmarshal(raw, &stored))
			assert.NotEmpty(t, stored, "reseeded collection is persisted")
		})
	}
}

func TestBuildCatalog_SkipsUserSKUs(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := entity.Product{SKU: "woz-sku-0003", Title: "Mate", Seller: "Ana Vera", Price: 1, Rating: 1}
	products, err := env.catalog.BuildCatalog(ctx, 5, []entity.Product{user})
	require.NoError(t, err)
	require.Len(t, products, 6)

	got := make(map[string]int)
	promoted := 0
	for _, p := range products {
		got[p.SKU]++
		if p.Promoted {
			promoted++
		}
	}
	assert.Equal(t, map[string]int{
		"woz-sku-0001": 1,
		"woz-sku-0002": 1,
		"woz-sku-0003": 1,
		"woz-sku-0004": 1,
		"woz-sku-0005": 1,
		"woz-sku-0006": 1,
	}, got)
	assert.Equal(t, 5, promoted, "every generated record is promoted")
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Regenerates by default", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Catalog.TotalProducts = 30

		require.NoError(t, env.repo.SaveCatalog(ctx, sampleProducts(2)))
		require.NoError(t, env.repo.SaveUserProducts(ctx, []entity.Product{{SKU: "woz-sku-0031", Title: "Mate", Price: 10, Rating: 1}}))

		products, err := env.catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 31)
	})

	t.Run("Reuses snapshot when configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Catalog.ReuseSnapshot = true

		require.NoError(t, env.repo.SaveCatalog(ctx, sampleProducts(2)))

		products, err := env.catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"woz-sku-0001", "woz-sku-0002"}, skus(products))
	})

	t.Run("Malformed snapshot is rebuilt", func(t *testing.T) {
		env := newTestEnv(t)
		env.cfg.Catalog.ReuseSnapshot = true
		env.cfg.Catalog.TotalProducts = 12

		require.NoError(t, env.store.Set(ctx, repository.KeyCatalog, []byte(`[{"sku":`)))

		products, err := env.catalog.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 12)

		raw, ok, err := env.store.Get(ctx, repository.KeyCatalog)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, json.Valid(raw))
	})
}

func TestSubmitProduct(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.catalog.BuildCatalog(ctx, 10, nil)
	require.NoError(t, err)

	input := &entity.ProductInput{
		Title:       "Mate artesanal",
		Category:    "Decoración",
		Supplier:    entity.SupplierWozMarketplace,
		Seller:      "Ana Vera",
		Price:       85000,
		Rating:      4.8,
		Description: "Hecho a mano en Luque.",
	}

	// Numbering starts past the configured catalog size.
	p, err := env.catalog.SubmitProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "woz-sku-0501", p.SKU)
	assert.Equal(t, "Gs. 85.000", p.PriceFormatted)
	assert.False(t, p.Promoted)

	second, err := env.catalog.SubmitProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "woz-sku-0502", second.SKU)

	userProducts, err := env.repo.UserProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"woz-sku-0501", "woz-sku-0502"}, skus(userProducts))

	snapshot, _, err := env.repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshot, 12)
}

func TestSubmitProduct_BeforeFirstLoadKeepsSKUsDistinct(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.cfg.Catalog.TotalProducts = 30

	input := &entity.ProductInput{
		Title:    "Termo Guaraní",
		Category: "Hogar",
		Supplier: entity.SupplierWozMarketplace,
		Seller:   "Ana Vera",
		Price:    150000,
		Rating:   4,
	}

	p, err := env.catalog.SubmitProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "woz-sku-0031", p.SKU)

	products, err := env.catalog.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, products, 31)

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		_, dup := seen[p.SKU]
		assert.False(t, dup, p.SKU)
		seen[p.SKU] = struct{}{}
	}

	next, err := env.catalog.SubmitProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "woz-sku-0032", next.SKU)
	assert.NotContains(t, seen, next.SKU)
}

func TestVendors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.catalog.Vendors(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	for _, v := range first {
		require.NotNil(t, v.Rating, v.Name)
	}

	second, err := env.catalog.Vendors(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	has, err := env.store.Has(ctx, repository.KeyVendors)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestSubmitProduct_Validation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name  string
		input entity.ProductInput
	}{
		{"Empty title", entity.ProductInput{Category: "Hogar", Supplier: "eBay", Seller: "Ana Vera", Price: 10, Rating: 3}},
		{"Zero price", entity.ProductInput{Title: "Mate", Category: "Hogar", Supplier: "eBay", Seller: "Ana Vera", Rating: 3}},
		{"Negative price", entity.ProductInput{Title: "Mate", Category: "Hogar", Supplier: "eBay", Seller: "Ana Vera", Price: -5, Rating: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.catalog.SubmitProduct(context.Background(), &tt.input)
			require.Error(t, err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}

	userProducts, err := env.repo.UserProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, userProducts)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.catalog.BuildCatalog(ctx, 5, nil)
	require.NoError(t, err)
	require.NoError(t, env.catalog.Reset(ctx))

	_, ok, err := env.repo.Catalog(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	has, err := env.store.Has(ctx, repository.KeyVendors)
	require.NoError(t, err)
	assert.False(t, has)
}
