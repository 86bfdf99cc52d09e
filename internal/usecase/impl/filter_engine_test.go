package impl

import (
	"context"
	"testing"

	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []entity.Product {
	return []entity.Product{
		{SKU: "woz-sku-0001", Title: "Cámara instantánea Pro", Category: "Cámaras", Supplier: "Amazon", Seller: "Ana Vera", Price: 1200000, Rating: 4.4, Promoted: true},
		{SKU: "woz-sku-0002", Title: "Mochila urbana Mini", Category: "Viaje Kit", Supplier: entity.SupplierWozMarketplace, Seller: "Luis Sosa", Price: 50000, Rating: 3.9},
		{SKU: "woz-sku-0003", Title: "Zapatillas running Sport", Category: "Calzado deportivo", Supplier: "AliExpress", Seller: "María Ayala", Price: 450000, Rating: 4.0},
		{SKU: "woz-sku-0004", Title: "Silla de oficina Deluxe", Category: "Muebles", Supplier: entity.SupplierWozDropshipping, Seller: "Ana Vera", Price: 2500000, Rating: 2.1},
		{SKU: "woz-sku-0005", Title: "Lentes de sol polarizados Lite", Category: "Accesorios", Supplier: "eBay", Seller: "Pedro Duarte", Price: 60000, Rating: 4.5},
	}
}

func TestApplyFilters(t *testing.T) {
	all := filterFixture()

	tests := []struct {
		name   string
		mutate func(f *entity.FilterState)
		want   []string
	}{
		{"Default state is identity", func(*entity.FilterState) {}, skus(all)},
		{"Hide internal suppliers", func(f *entity.FilterState) { f.IncludeInternal = false },
			[]string{"woz-sku-0001", "woz-sku-0003", "woz-sku-0005"}},
		{"Category", func(f *entity.FilterState) { f.Category = "Muebles" }, []string{"woz-sku-0004"}},
		{"Supplier", func(f *entity.FilterState) { f.Supplier = "AliExpress" }, []string{"woz-sku-0003"}},
		{"Seller", func(f *entity.FilterState) { f.Seller = "Ana Vera" }, []string{"woz-sku-0001", "woz-sku-0004"}},
		{"Price range inclusive", func(f *entity.FilterState) { f.PriceRange = &entity.PriceRange{Min: 50000, Max: 450000} },
			[]string{"woz-sku-0002", "woz-sku-0003", "woz-sku-0005"}},
		{"Minimum rating inclusive", func(f *entity.FilterState) { f.MinRating = 4.0 },
			[]string{"woz-sku-0001", "woz-sku-0003", "woz-sku-0005"}},
		{"Query title case-insensitive", func(f *entity.FilterState) { f.Query = "CÁMARA" }, []string{"woz-sku-0001"}},
		{"Query seller", func(f *entity.FilterState) { f.Query = "duarte" }, []string{"woz-sku-0005"}},
		{"Query category", func(f *entity.FilterState) { f.Query = "calzado" }, []string{"woz-sku-0003"}},
		{"Combined", func(f *entity.FilterState) {
			f.Seller = "Ana Vera"
			f.IncludeInternal = false
		}, []string{"woz-sku-0001"}},
		{"No results", func(f *entity.FilterState) { f.Query = "tractor" }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := entity.DefaultFilterState()
			tt.mutate(&f)

			got := ApplyFilters(all, f)
			assert.Equal(t, tt.want, skus(got))
		})
	}
}

func TestApplyFilters_DoesNotAlias(t *testing.T) {
	all := filterFixture()

	got := ApplyFilters(all, entity.DefaultFilterState())
	got[0].Title = "changed"

	assert.Equal(t, "Cámara instantánea Pro", all[0].Title)
}

func TestApplyFilters_MinRatingScenario(t *testing.T) {
	env := newTestEnv(t)

	all, err := env.catalog.BuildCatalog(context.Background(), 500, nil)
	require.NoError(t, err)
	require.Len(t, all, 500)

	f := entity.DefaultFilterState()
	f.MinRating = 4.0
	got := ApplyFilters(all, f)

	require.NotEmpty(t, got)
	position := make(map[string]int, len(all))
	for i, p := range all {
		position[p.SKU] = i
	}
	last := -1
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Rating, 4.0)
		assert.Greater(t, position[p.SKU], last, "relative order changed at %s", p.SKU)
		last = position[p.SKU]
	}

	matching := 0
	for _, p := range all {
		if p.Rating >= 4.0 {
			matching++
		}
	}
	assert.Len(t, got, matching)
}

func TestSortProducts(t *testing.T) {
	tests := []struct {
		name  string
		order entity.SortOrder
		want  []string
	}{
		{"Relevance keeps order", entity.SortRelevance, []string{"woz-sku-0001", "woz-sku-0002", "woz-sku-0003", "woz-sku-0004", "woz-sku-0005"}},
		{"Price low", entity.SortPriceLow, []string{"woz-sku-0002", "woz-sku-0005", "woz-sku-0003", "woz-sku-0001", "woz-sku-0004"}},
		{"Price high", entity.SortPriceHigh, []string{"woz-sku-0004", "woz-sku-0001", "woz-sku-0003", "woz-sku-0005", "woz-sku-0002"}},
		{"Rating high", entity.SortRatingHigh, []string{"woz-sku-0005", "woz-sku-0001", "woz-sku-0003", "woz-sku-0002", "woz-sku-0004"}},
		{"Unknown keeps order", entity.SortOrder("name"), []string{"woz-sku-0001", "woz-sku-0002", "woz-sku-0003", "woz-sku-0004", "woz-sku-0005"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := filterFixture()
			SortProducts(products, tt.order)
			assert.Equal(t, tt.want, skus(products))
		})
	}
}

func TestParsePriceRange(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    *entity.PriceRange
		wantErr bool
	}{
		{"Empty", "", nil, false},
		{"Both bounds", "100000-800000", &entity.PriceRange{Min: 100000, Max: 800000}, false},
		{"Spaces", " 40000 - 60000 ", &entity.PriceRange{Min: 40000, Max: 60000}, false},
		{"Open minimum", "-60000", &entity.PriceRange{Min: 0, Max: 60000}, false},
		{"No separator", "60000", nil, true},
		{"Not a number", "min-max", nil, true},
		{"Reversed", "900-100", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriceRange(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidFilterInput))
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	open, err := ParsePriceRange("1000000-")
	require.NoError(t, err)
	assert.True(t, open.Contains(5000000))
}

func TestParseMinRating(t *testing.T) {
	assert.InDelta(t, 4.0, ParseMinRating("4"), 1e-9)
	assert.InDelta(t, 3.5, ParseMinRating(" 3.5 "), 1e-9)
	assert.Zero(t, ParseMinRating("cuatro"))
	assert.Zero(t, ParseMinRating("9"))
	assert.Zero(t, ParseMinRating(""))
}

func TestBuildFacets(t *testing.T) {
	vendors := []entity.Vendor{
		entity.NewRatedVendor("Pedro Duarte", 3.5),
		entity.NewRatedVendor("Ana Vera", 4.5),
		entity.NewRatedVendor("Rosa Benítez", 2),
	}
	facets := BuildFacets(filterFixture(), vendors)

	assert.Equal(t, []string{"AliExpress", "Amazon", entity.SupplierWozDropshipping, entity.SupplierWozMarketplace, "eBay"}, facets.Suppliers)
	assert.Equal(t, []entity.Vendor{
		entity.NewRatedVendor("Ana Vera", 4.5),
		{Name: "Luis Sosa"},
		{Name: "María Ayala"},
		entity.NewRatedVendor("Pedro Duarte", 3.5),
	}, facets.Sellers, "only sellers present in the products, rated from the directory")
	assert.Len(t, facets.Categories, 5)

	labels := make([]string, 0, len(facets.Sellers))
	for _, v := range facets.Sellers {
		labels = append(labels, v.RatingLabel())
	}
	assert.Equal(t, []string{"4.5", entity.UnratedLabel, entity.UnratedLabel, "3.5"}, labels)
}
