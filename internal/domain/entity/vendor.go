package entity

import (
	"strconv"
)

// UnratedLabel tags vendors without a rating.
const UnratedLabel = "unrated"

// Vendor is a seller (dropper) listed as fulfilling orders.
// A nil Rating means the vendor is unrated; it is never coerced to a number.
type Vendor struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

// NewRatedVendor returns a vendor with the given rating.
func NewRatedVendor(name string, rating float64) Vendor {
	return Vendor{Name: name, Rating: &rating}
}

// RatingLabel renders the rating with one decimal, or UnratedLabel.
func (v Vendor) RatingLabel() string {
	if v.Rating == nil {
		return UnratedLabel
	}

	return strconv.FormatFloat(*v.Rating, 'f', 1, 64)
}

// VendorNames returns the names of vendors in order.
func VendorNames(vendors []Vendor) []string {
	names := make([]string, 0, len(vendors))
	for _, v := range vendors {
		names = append(names, v.Name)
	}

	return names
}
