package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shipping methods offered on the detail page.
const (
	ShippingAir   = "Transporte aéreo"
	ShippingSea   = "Marítimo"
	ShippingLocal = "Delivery local"
)

// Logistics holds the synthesized delivery facts for a product.
type Logistics struct {
	DeliveryDays   int       `json:"deliveryDays"`
	DeliveryDate   time.Time `json:"deliveryDate"`
	ShippingMethod string    `json:"shippingMethod"`
	NextDay        bool      `json:"nextDay"`
}

// SellerProfile holds the synthesized reputation of a seller.
type SellerProfile struct {
	ActiveSince time.Time `json:"activeSince"`
	Phone       string    `json:"phone"`
	Sales       int       `json:"sales"`
	Volume      int64     `json:"volume"`
}

// Comment is a synthesized customer review.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	Author   string    `json:"author"`
	FlagCode string    `json:"flagCode"`
	City     string    `json:"city"`
	Date     string    `json:"date"`
	Stars    int       `json:"stars"`
	Phrases  []string  `json:"phrases"`
}

// ProductDetail is a resolved product with its synthesized presentation fields.
type ProductDetail struct {
	Product         Product
	Description     string
	Logistics       Logistics
	DeliveryMessage string
	Seller          SellerProfile
	Comments        []Comment
}

// CheckoutSummary is the single-item order summary.
type CheckoutSummary struct {
	SKU            string `json:"sku"`
	Title          string `json:"title"`
	PriceFormatted string `json:"priceFormatted"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"totalFormatted"`
}

// ProductInput is a user-submitted listing.
type ProductInput struct {
	Title       string  `json:"title" validate:"required,max=120"`
	Category    string  `json:"category" validate:"required"`
	Supplier    string  `json:"supplier" validate:"required"`
	Seller      string  `json:"seller" validate:"required"`
	Price       int64   `json:"price" validate:"gt=0"`
	Rating      float64 `json:"rating" validate:"gte=1,lte=5"`
	Description string  `json:"description" validate:"max=2000"`
}

// Facets are the distinct option values offered by the filter panel.
type Facets struct {
	Suppliers []string
	// Sellers carry the directory rating; sellers outside the directory are unrated.
	Sellers    []Vendor
	Categories []string
}
