package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0"},
		{in: 999, want: "999"},
		{in: 1000, want: "1.000"},
		{in: 45000, want: "45.000"},
		{in: 1234567, want: "1.234.567"},
		{in: -1234567, want: "-1.234.567"},
		{in: -999, want: "-999"},
		{in: math.MaxInt64, want: "9.223.372.036.854.775.807"},
		{in: math.MinInt64, want: "-9.223.372.036.854.775.808"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatThousands(tt.in))
	}
	assert.Equal(t, "Gs. 150.000", FormatPrice(150000))
}

func TestSKU(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "woz-sku-0007", FormatSKU(7))
	assert.Equal(t, "woz-sku-12345", FormatSKU(12345))

	n, ok := ParseSKU("woz-sku-0042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, bad := range []string{"", "woz-sku-", "sku-0001", "woz-sku-abc"} {
		_, ok := ParseSKU(bad)
		assert.False(t, ok, bad)
	}
}

func TestProduct_Normalize(t *testing.T) {
	p := Product{Price: 2500000, PriceFormatted: "stale"}
	p.Normalize()

	assert.Equal(t, "Gs. 2.500.000", p.PriceFormatted)
}

func TestVendor_RatingLabel(t *testing.T) {
	assert.Equal(t, "4.0", NewRatedVendor("Ana", 4).RatingLabel())
	assert.Equal(t, UnratedLabel, Vendor{Name: "Luis"}.RatingLabel())
}

func TestIsInternalSupplier(t *testing.T) {
	assert.True(t, IsInternalSupplier(SupplierWozDropshipping))
	assert.False(t, IsInternalSupplier("AliExpress"))
}

func TestDefaultFilterState(t *testing.T) {
	f := DefaultFilterState()

	assert.Equal(t, DefaultCountry, f.Country)
	assert.True(t, f.IncludeInternal)
	assert.Equal(t, SortRelevance, f.Sort)
}
