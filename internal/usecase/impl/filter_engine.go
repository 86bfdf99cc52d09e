package impl

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/errors"

	"golang.org/x/text/cases"
)

// productPredicate reports whether p passes one filter rule.
type productPredicate func(p *entity.Product) bool

// predicates returns the active rules of f in evaluation order.
func predicates(f entity.FilterState) []productPredicate {
	var rules []productPredicate

	if !f.IncludeInternal {
		rules = append(rules, func(p *entity.Product) bool { return !entity.IsInternalSupplier(p.Supplier) })
	}
	if f.Category != "" {
		rules = append(rules, func(p *entity.Product) bool { return p.Category == f.Category })
	}
	if f.Supplier != "" {
		rules = append(rules, func(p *entity.Product) bool { return p.Supplier == f.Supplier })
	}
	if f.Seller != "" {
		rules = append(rules, func(p *entity.Product) bool { return p.Seller == f.Seller })
	}
	if f.PriceRange != nil {
		r := *f.PriceRange
		rules = append(rules, func(p *entity.Product) bool { return r.Contains(p.Price) })
	}
	if f.MinRating > 0 {
		rules = append(rules, func(p *entity.Product) bool { return p.Rating >= f.MinRating })
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		// A Caser is stateful; each filter pass gets its own.
		folder := cases.Fold()
		needle := folder.String(q)
		rules = append(rules, func(p *entity.Product) bool {
			return strings.Contains(folder.String(p.Title), needle) ||
				strings.Contains(folder.String(p.Seller), needle) ||
				strings.Contains(folder.String(p.Category), needle)
		})
	}

	return rules
}

// ApplyFilters returns the products passing every rule of f, in input order.
// The result never aliases all.
func ApplyFilters(all []entity.Product, f entity.FilterState) []entity.Product {
	rules := predicates(f)

	out := make([]entity.Product, 0, len(all))
	for i := range all {
		pass := true
		for _, rule := range rules {
			if !rule(&all[i]) {
				pass = false

				break
			}
		}
		if pass {
			out = append(out, all[i])
		}
	}

	return out
}

// SortProducts reorders products in place for the chosen order.
// SortRelevance and unknown orders keep the catalog order.
func SortProducts(products []entity.Product, order entity.SortOrder) {
	var less func(a, b *entity.Product) bool
	switch order {
	case entity.SortPriceLow:
		less = func(a, b *entity.Product) bool { return a.Price < b.Price }
	case entity.SortPriceHigh:
		less = func(a, b *entity.Product) bool { return a.Price > b.Price }
	case entity.SortRatingHigh:
		less = func(a, b *entity.Product) bool { return a.Rating > b.Rating }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool { return less(&products[i], &products[j]) })
}

// ParsePriceRange parses a "min-max" token. Either bound may be left empty.
func ParsePriceRange(token string) (*entity.PriceRange, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	lo, hi, ok := strings.Cut(token, "-")
	if !ok {
		return nil, invalidFilter("price range %q lacks a separator", token)
	}

	r := entity.PriceRange{Min: 0, Max: math.MaxInt64}
	if s := strings.TrimSpace(lo); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, invalidFilter("price range %q has a bad minimum", token)
		}
		r.Min = n
	}
	if s := strings.TrimSpace(hi); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, invalidFilter("price range %q has a bad maximum", token)
		}
		r.Max = n
	}
	if r.Min > r.Max {
		return nil, invalidFilter("price range %q is reversed", token)
	}

	return &r, nil
}

// ParseMinRating parses a minimum rating; bad or out-of-range input means no constraint.
func ParseMinRating(token string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil || v < 0 || v > 5 {
		return 0
	}

	return v
}

func invalidFilter(format string, args ...any) error {
	return errors.WithStack(domainerrors.ErrInvalidFilterInput.WithDetails(fmt.Sprintf(format, args...)))
}

// BuildFacets returns the sorted distinct suppliers, sellers and categories of
// products. Sellers take their rating from vendors.
func BuildFacets(products []entity.Product, vendors []entity.Vendor) entity.Facets {
	suppliers := make(map[string]struct{})
	sellers := make(map[string]struct{})
	categories := make(map[string]struct{})
	for _, p := range products {
		suppliers[p.Supplier] = struct{}{}
		sellers[p.Seller] = struct{}{}
		categories[p.Category] = struct{}{}
	}

	directory := make(map[string]entity.Vendor, len(vendors))
	for _, v := range vendors {
		directory[v.Name] = v
	}
	names := sortedKeys(sellers)
	rated := make([]entity.Vendor, 0, len(names))
	for _, name := range names {
		v, ok := directory[name]
		if !ok {
			v = entity.Vendor{Name: name}
		}
		rated = append(rated, v)
	}

	return entity.Facets{
		Suppliers:  sortedKeys(suppliers),
		Sellers:    rated,
		Categories: sortedKeys(categories),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}
