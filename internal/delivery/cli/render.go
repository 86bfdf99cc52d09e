package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"wozmarket/internal/domain/entity"
)

const (
	noResultsMessage = "No se encontraron productos con los filtros seleccionados."
	promotedLabel    = "[PROMO]"
	maxStars         = 5
)

func (r *Runner) printProducts(state entity.RenderState) {
	if state.NoResults() {
		fmt.Fprintln(r.out, noResultsMessage)

		return
	}

	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	for _, p := range state.Rendered() {
		label := ""
		if p.Promoted {
			label = promotedLabel
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s (%d)\t%s\t%s\n",
			label, p.SKU, p.Title, p.PriceFormatted,
			formatRating(p.Rating), p.Reviews, p.Seller, p.Supplier)
	}
	tw.Flush()

	fmt.Fprintf(r.out, "Mostrando %d de %d productos (%s)\n",
		state.RenderedCount, len(state.Filtered), state.State)
}

func (r *Runner) printDetail(d *entity.ProductDetail) {
	p := d.Product

	fmt.Fprintf(r.out, "%s  %s\n", p.SKU, p.Title)
	fmt.Fprintf(r.out, "Precio: %s\n", p.PriceFormatted)
	fmt.Fprintf(r.out, "Calificación: %s (%d reseñas)\n", formatRating(p.Rating), p.Reviews)
	fmt.Fprintf(r.out, "Categoría: %s\n", p.Category)
	fmt.Fprintf(r.out, "Proveedor: %s\n", p.Supplier)
	fmt.Fprintf(r.out, "Envío: %s, %d días\n", d.Logistics.ShippingMethod, d.Logistics.DeliveryDays)
	fmt.Fprintln(r.out, d.DeliveryMessage)

	s := d.Seller
	fmt.Fprintf(r.out, "Vendedor: %s\n", p.Seller)
	fmt.Fprintf(r.out, "  Activo desde %s, %d ventas, %s en ventas\n",
		s.ActiveSince.Format("01/2006"), s.Sales, entity.FormatPrice(s.Volume))
	fmt.Fprintf(r.out, "  Teléfono: %s\n", s.Phone)

	fmt.Fprintln(r.out, "Descripción:")
	fmt.Fprintln(r.out, d.Description)

	fmt.Fprintf(r.out, "Comentarios (%d):\n", len(d.Comments))
	for _, c := range d.Comments {
		fmt.Fprintf(r.out, "  %s %s (%s, %s) %s\n", stars(c.Stars), c.Author, c.City, c.FlagCode, c.Date)
		for _, phrase := range c.Phrases {
			fmt.Fprintf(r.out, "    %s\n", phrase)
		}
	}
}

func (r *Runner) printCheckout(s *entity.CheckoutSummary) {
	fmt.Fprintf(r.out, "%s  %s\n", s.SKU, s.Title)
	fmt.Fprintf(r.out, "Precio: %s\n", s.PriceFormatted)
	fmt.Fprintf(r.out, "Total: %s\n", s.TotalFormatted)
}

func (r *Runner) printFacets(f entity.Facets) {
	printList := func(title string, values []string) {
		fmt.Fprintf(r.out, "%s (%d):\n", title, len(values))
		for _, v := range values {
			fmt.Fprintf(r.out, "  %s\n", v)
		}
	}

	printList("Proveedores", f.Suppliers)
	fmt.Fprintf(r.out, "Vendedores (%d):\n", len(f.Sellers))
	for _, v := range f.Sellers {
		fmt.Fprintf(r.out, "  %s (%s)\n", v.Name, v.RatingLabel())
	}
	printList("Categorías", f.Categories)
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

func stars(n int) string {
	n = min(max(n, 0), maxStars)

	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}
