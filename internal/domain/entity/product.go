// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// SKUPrefix is the fixed prefix of every catalog identifier.
	SKUPrefix = "woz-sku-"
	// PricePrefix is the currency marker of formatted prices.
	PricePrefix = "Gs. "
)

// Product represents a single catalog listing, generated or user-submitted.
type Product struct {
	SKU            string  `json:"sku"`                   // Stable identifier, woz-sku-####.
	Title          string  `json:"title"`                 // Display name.
	Category       string  `json:"category"`              // Flat category identifier.
	Supplier       string  `json:"supplier"`              // Upstream sourcing channel.
	Seller         string  `json:"seller"`                // Vendor fulfilling the order.
	Price          int64   `json:"price"`                 // Positive integer amount in guaraníes.
	PriceFormatted string  `json:"priceFormatted"`        // Always FormatPrice(Price).
	Rating         float64 `json:"rating"`                // 1.0 to 5.0, one decimal.
	Reviews        int     `json:"reviews"`               // Review count.
	Description    string  `json:"description,omitempty"` // Empty means absent.
	Promoted       bool    `json:"promoted"`              // Set at generation time only.
}

// FormatSKU renders the catalog identifier for a 1-based index.
func FormatSKU(index int) string {
	return fmt.Sprintf("%s%04d", SKUPrefix, index)
}

// ParseSKU returns the numeric part of a catalog identifier.
func ParseSKU(sku string) (int, bool) {
	digits, ok := strings.CutPrefix(sku, SKUPrefix)
	if !ok || digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// FormatThousands renders n with "." as the thousands group separator.
func FormatThousands(n int64) string {
	neg := n < 0
	u := uint64(n)
	if neg {
		// -n overflows for math.MinInt64.
		u = uint64(-(n + 1)) + 1
	}

	s := strconv.FormatUint(u, 10)
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}

		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	if neg {
		b.WriteByte('-')
	}

	rem := len(s) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}

	return b.String()
}

// FormatPrice renders a price the way listings display it, e.g. "Gs. 1.234.567".
func FormatPrice(price int64) string {
	return PricePrefix + FormatThousands(price)
}

// Normalize re-derives PriceFormatted from Price.
func (p *Product) Normalize() {
	p.PriceFormatted = FormatPrice(p.Price)
}
