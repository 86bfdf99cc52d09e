package generator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"wozmarket/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	minComments      = 5
	maxComments      = 10
	negativeComments = 2
	minPhrases       = 2
	maxPhrases       = 4

	// commentRetries bounds redraws of a comment whose text was already used.
	commentRetries = 50
)

var (
	placeholderDescription = regexp.MustCompile(`(?i)fictici|demo`)

	slowSuppliers   = regexp.MustCompile(`(?i)ali|china`)
	weeklySuppliers = regexp.MustCompile(`(?i)amazon|walmart|ebay|usa|estados`)
	localSuppliers  = regexp.MustCompile(`(?i)woz`)

	sellerPhonePrefixes = []string{"961", "971", "981", "991"}

	spanishMonths = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
)

// IsPlaceholderDescription reports whether a seller description is demo filler.
func IsPlaceholderDescription(text string) bool {
	return placeholderDescription.MatchString(text)
}

// Logistics derives delivery days and shipping method from the supplier name.
// The delivery date is counted from now.
func (g *Generator) Logistics(supplier string, now time.Time) entity.Logistics {
	var l entity.Logistics

	switch {
	case slowSuppliers.MatchString(supplier):
		l.DeliveryDays = g.between(7, 10)
		l.ShippingMethod = g.airOrSea()
	case weeklySuppliers.MatchString(supplier):
		l.DeliveryDays = 7
		l.ShippingMethod = g.airOrSea()
	case localSuppliers.MatchString(supplier):
		l.DeliveryDays = 1
		l.ShippingMethod = entity.ShippingLocal
		l.NextDay = true
	default:
		l.DeliveryDays = 7
		l.ShippingMethod = entity.ShippingAir
	}
	l.DeliveryDate = now.AddDate(0, 0, l.DeliveryDays)

	return l
}

func (g *Generator) airOrSea() string {
	if g.src.Float64() > 0.5 {
		return entity.ShippingAir
	}

	return entity.ShippingSea
}

// DeliveryMessage renders the purchase countdown until midnight and the
// expected arrival day, e.g. "Compra en 5h 30m para que te llegue en 21 de octubre.".
func DeliveryMessage(l entity.Logistics, now time.Time) string {
	hours := 24 - now.Hour()
	minutes := (60 - now.Minute()) % 60

	left := fmt.Sprintf("%dh", hours)
	if minutes != 0 {
		left = fmt.Sprintf("%dh %dm", hours, minutes)
	}

	day := fmt.Sprintf("%d de %s", l.DeliveryDate.Day(), spanishMonths[l.DeliveryDate.Month()-1])
	if l.NextDay {
		return fmt.Sprintf("Compra en %s para que te llegue mañana (%s).", left, day)
	}

	return fmt.Sprintf("Compra en %s para que te llegue en %s.", left, day)
}

// SellerProfile synthesizes a seller's reputation block.
func (g *Generator) SellerProfile() entity.SellerProfile {
	since := time.Date(2022+g.src.Intn(4), time.Month(1+g.src.Intn(12)), 1+g.src.Intn(28), 0, 0, 0, 0, time.UTC)

	return entity.SellerProfile{
		ActiveSince: since,
		Phone:       fmt.Sprintf("+595 %s-393-%d", g.pick(sellerPhonePrefixes), g.between(100, 999)),
		Sales:       g.between(20, 419),
		Volume:      int64(g.between(1_000_000, 500_000_000)),
	}
}

// Comments synthesizes 5 to 10 bilingual reviews. The last two are negative.
// No two comments share the same text.
func (g *Generator) Comments() []entity.Comment {
	rv := g.vocab.Reviews
	count := g.between(minComments, maxComments)

	used := make(map[string]struct{}, count)
	comments := make([]entity.Comment, 0, count)
	for retries := 0; len(comments) < count && retries <= count*commentRetries; retries++ {
		i := len(comments)
		negative := i >= count-negativeComments

		english := g.src.Float64() > 0.5
		authors, flags, pool := rv.AuthorsES, rv.FlagsES, rv.PositiveES
		switch {
		case english && negative:
			authors, flags, pool = rv.AuthorsEN, rv.FlagsEN, rv.NegativeEN
		case english:
			authors, flags, pool = rv.AuthorsEN, rv.FlagsEN, rv.PositiveEN
		case negative:
			pool = rv.NegativeES
		}

		author := g.pick(authors)
		flag := g.pick(flags)
		phrases := g.distinct(pool, g.between(minPhrases, maxPhrases))

		text := strings.Join(phrases, "\n")
		if _, ok := used[text]; ok {
			continue
		}
		used[text] = struct{}{}

		stars := g.between(4, 5)
		if negative {
			stars = g.between(2, 3)
		}

		comments = append(comments, entity.Comment{
			ID:       uuid.New(),
			Author:   author,
			FlagCode: flag,
			City:     g.city(flag),
			Date:     fmt.Sprintf("%02d-%02d-%d", g.between(1, 28), g.between(1, 12), g.between(2020, 2025)),
			Stars:    stars,
			Phrases:  phrases,
		})
	}

	return comments
}

func (g *Generator) city(flag string) string {
	rv := g.vocab.Reviews

	country, ok := rv.Countries[flag]
	if !ok {
		country = strings.ToUpper(flag)
	}

	cities := rv.Cities[flag]
	if len(cities) == 0 {
		return "Ciudad, " + country
	}

	return g.pick(cities) + ", " + country
}

// distinct draws n different entries of pool, clamped to the pool size.
func (g *Generator) distinct(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}

	picked := make([]string, 0, n)
	for len(picked) < n {
		p := g.pick(pool)
		dup := false
		for _, q := range picked {
			if q == p {
				dup = true

				break
			}
		}
		if !dup {
			picked = append(picked, p)
		}
	}

	return picked
}

// Description returns the seller-provided text unless it is empty or demo
// filler; otherwise it composes two or three sentences about the product.
func (g *Generator) Description(title, existing string) string {
	if strings.TrimSpace(existing) != "" && !IsPlaceholderDescription(existing) {
		return existing
	}

	b := g.vocab.Blurbs
	sentences := []string{
		fmt.Sprintf("Producto %s pensado para %s.", title, g.pick(b.Uses)),
		fmt.Sprintf("Ideal para uso %s, con diseño %s.", g.pick(b.Kinds), g.pick(b.Benefits)),
		"Presenta acabados cuidados y rendimiento confiable para el día a día.",
		"Perfecto para quienes buscan una solución práctica y de buena relación calidad-precio.",
	}

	return strings.Join(g.distinct(sentences, g.between(2, 3)), " ")
}
