// Package generator synthesizes the fictitious catalog content: prices,
// ratings, titles, vendors, categories and the presentation facts shown on
// the detail page.
package generator

import (
	"math"
	"strings"

	"wozmarket/internal/domain/entity"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/service"
	"wozmarket/internal/errors"
)

const (
	minReviews = 5
	maxReviews = 12000

	// uniqueDrawAttempts bounds rejection sampling per requested entry.
	uniqueDrawAttempts = 100
)

// PickOne returns a uniformly random element of vocabulary.
func PickOne[T any](src service.RandomSource, vocabulary []T) (T, error) {
	var zero T
	if len(vocabulary) == 0 {
		return zero, errors.WithStack(domainerrors.ErrEmptyVocabulary)
	}

	return vocabulary[src.Intn(len(vocabulary))], nil
}

// RandomInt returns a uniform integer in [lo, hi].
func RandomInt(src service.RandomSource, lo, hi int) (int, error) {
	if lo > hi {
		return 0, errors.WithStack(domainerrors.ErrInvalidRange.WithDetails("min greater than max"))
	}

	return lo + src.Intn(hi-lo+1), nil
}

func emptyVocabulary(name string) error {
	return errors.WithStack(domainerrors.ErrEmptyVocabulary.WithDetails(name))
}

// Generator draws every synthetic value from one injected random source.
// Its vocabulary is validated at construction, so the pick helpers below
// never see an empty list.
type Generator struct {
	src   service.RandomSource
	vocab Vocabulary
}

// New creates a generator; it fails with ErrEmptyVocabulary on any empty list.
func New(src service.RandomSource, vocab Vocabulary) (*Generator, error) {
	if err := vocab.validate(); err != nil {
		return nil, err
	}

	return &Generator{src: src, vocab: vocab}, nil
}

// NewDefault creates a generator over DefaultVocabulary.
func NewDefault(src service.RandomSource) (*Generator, error) {
	return New(src, DefaultVocabulary())
}

// Vocabulary returns the word lists in use.
func (g *Generator) Vocabulary() Vocabulary {
	return g.vocab
}

// Source returns the random source every draw comes from.
func (g *Generator) Source() service.RandomSource {
	return g.src
}

func (g *Generator) pick(list []string) string {
	return list[g.src.Intn(len(list))]
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.src.Intn(hi-lo+1)
}

// GeneratePrice draws a price from the bucketed distribution. The unit
// interval is partitioned by cumulative weight; a draw past the last
// cumulative bound (rounding shortfall) falls into the last bucket.
func (g *Generator) GeneratePrice() int64 {
	buckets := g.vocab.PriceBuckets
	r := g.src.Float64()

	acc := 0.0
	for _, b := range buckets {
		acc += b.Weight
		if r < acc {
			return int64(g.between(b.Min, b.Max))
		}
	}

	last := buckets[len(buckets)-1]

	return int64(g.between(last.Min, last.Max))
}

// GenerateRating draws a product rating uniformly over [1.0, 4.5], one decimal.
func (g *Generator) GenerateRating() float64 {
	return roundTenth(g.src.Float64()*3.5 + 1.0)
}

// GenerateVendorRating draws a vendor rating uniformly over [1.0, 5.0], one decimal.
func (g *Generator) GenerateVendorRating() float64 {
	return roundTenth(g.src.Float64()*4 + 1.0)
}

// GenerateReviews draws a review count.
func (g *Generator) GenerateReviews() int {
	return g.between(minReviews, maxReviews)
}

// GenerateTitle composes a title template with a random modifier.
func (g *Generator) GenerateTitle() string {
	tpl := g.pick(g.vocab.TitleTemplates)
	mod := g.pick(g.vocab.Modifiers)

	return strings.Replace(tpl, ModifierPlaceholder, mod, 1)
}

// Suppliers returns the supplier vocabulary.
func (g *Generator) Suppliers() []string {
	return append([]string(nil), g.vocab.Suppliers...)
}

// Categories returns the seed categories followed by unique combinations of
// category words and suffixes, up to CategoryCount entries.
func (g *Generator) Categories() []string {
	v := g.vocab
	limit := v.CategoryCount
	if maxCombos := len(v.CategorySeeds) + len(v.CategoryWords)*len(v.CategoryWords)*len(v.CategorySuffixes); limit > maxCombos {
		limit = maxCombos
	}

	seen := make(map[string]struct{}, limit)
	cats := make([]string, 0, limit)
	add := func(c string) {
		if _, ok := seen[c]; ok || len(cats) >= limit {
			return
		}
		seen[c] = struct{}{}
		cats = append(cats, c)
	}

	for _, s := range v.CategorySeeds {
		add(s)
	}
	for attempts := limit * uniqueDrawAttempts; len(cats) < limit && attempts > 0; attempts-- {
		add(g.pick(v.CategoryWords) + " " + g.pick(v.CategoryWords) + " " + g.pick(v.CategorySuffixes))
	}

	return cats
}

// Vendors returns VendorCount vendors with unique names and ratings in [1.0, 5.0].
func (g *Generator) Vendors() []entity.Vendor {
	v := g.vocab
	limit := v.VendorCount
	if maxNames := len(v.FirstNames) * len(v.LastNames); limit > maxNames {
		limit = maxNames
	}

	seen := make(map[string]struct{}, limit)
	vendors := make([]entity.Vendor, 0, limit)
	for attempts := limit * uniqueDrawAttempts; len(vendors) < limit && attempts > 0; attempts-- {
		name := g.pick(v.FirstNames) + " " + g.pick(v.LastNames)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		vendors = append(vendors, entity.NewRatedVendor(name, g.GenerateVendorRating()))
	}

	return vendors
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
