package impl

import (
	"io"
	"strconv"
	"strings"
	"time"

	"wozmarket/internal/domain/entity"
	"wozmarket/internal/errors"
)

// ExportHeader lists the CSV columns in order.
var ExportHeader = []string{"sku", "title", "category", "supplier", "seller", "price", "rating", "reviews", "description"}

const exportFilePrefix = "woz_products_export_"

// ExportCSV writes products as CSV. Every field is double-quoted with inner
// quotes doubled, and rows are joined by "\n" without a trailing newline.
// An empty slice yields the header row only.
func ExportCSV(w io.Writer, products []entity.Product) error {
	var b strings.Builder
	writeRow(&b, ExportHeader)

	for _, p := range products {
		b.WriteByte('\n')
		writeRow(&b, []string{
			p.SKU,
			p.Title,
			p.Category,
			p.Supplier,
			p.Seller,
			strconv.FormatInt(p.Price, 10),
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
			strconv.Itoa(p.Reviews),
			strings.ReplaceAll(strings.ReplaceAll(p.Description, "\r\n", " "), "\n", " "),
		})
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write csv export")
	}

	return nil
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}

// ExportFilename names an export made at now: woz_products_export_YYYY-MM-DD.csv.
func ExportFilename(now time.Time) string {
	return exportFilePrefix + now.UTC().Format(time.DateOnly) + ".csv"
}
