package entity

// DefaultCountry is the shipping country preselected for new sessions.
const DefaultCountry = "Paraguay"

// Countries lists the shipping destinations offered by the country selector.
var Countries = []string{
	"Paraguay", "Argentina", "Brasil", "Chile", "Uruguay",
	"Bolivia", "Perú", "Estados Unidos", "China",
}

// PriceRange is an inclusive price bound.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Contains reports whether min <= price <= max.
func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// SortOrder selects an optional reordering applied after filtering.
type SortOrder string

const (
	SortRelevance  SortOrder = "relevance"
	SortPriceLow   SortOrder = "price_low"
	SortPriceHigh  SortOrder = "price_high"
	SortRatingHigh SortOrder = "rating_high"
)

// FilterState is the structured predicate evaluated over the catalog.
// Empty strings, a nil PriceRange and a zero MinRating impose no constraint.
//
// IncludeInternal mirrors the dropper toggle: true shows every product,
// false hides products shipped by the platform's own suppliers.
type FilterState struct {
	Query           string      `json:"query"`
	Category        string      `json:"category,omitempty"`
	Supplier        string      `json:"supplier,omitempty"`
	Seller          string      `json:"seller,omitempty"`
	PriceRange      *PriceRange `json:"priceRange,omitempty"`
	MinRating       float64     `json:"minRating"`
	Country         string      `json:"country"`
	IncludeInternal bool        `json:"includeInternal"`
	Sort            SortOrder   `json:"sort,omitempty"`
}

// DefaultFilterState returns the state that lets every product through.
func DefaultFilterState() FilterState {
	return FilterState{
		Country:         DefaultCountry,
		IncludeInternal: true,
		Sort:            SortRelevance,
	}
}
