package impl

import (
	"bytes"
	"testing"
	"time"

	"wozmarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quotedHeader = `"sku","title","category","supplier","seller","price","rating","reviews","description"`

func TestExportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))

	assert.Equal(t, quotedHeader, buf.String())
}

func TestExportCSV_Rows(t *testing.T) {
	products := []entity.Product{
		{SKU: "woz-sku-0001", Title: `Cámara "Pro"`, Category: "Cámaras", Supplier: "Amazon", Seller: "Ana Vera",
			Price: 1200000, Rating: 4.5, Reviews: 320, Description: "Línea uno\nLínea dos"},
		{SKU: "woz-sku-0002", Title: "Mate, termo y bombilla", Category: "Hogar", Supplier: "eBay", Seller: "Luis Sosa",
			Price: 50000, Rating: 4, Reviews: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, products))

	want := quotedHeader + "\n" +
		`"woz-sku-0001","Cámara ""Pro""","Cámaras","Amazon","Ana Vera","1200000","4.5","320","Línea uno Línea dos"` + "\n" +
		`"woz-sku-0002","Mate, termo y bombilla","Hogar","eBay","Luis Sosa","50000","4","5",""`
	assert.Equal(t, want, buf.String())
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "woz_products_export_2025-10-14.csv", ExportFilename(fixedNow))
	assert.Equal(t, "woz_products_export_2026-01-02.csv",
		ExportFilename(time.Date(2026, time.January, 2, 23, 0, 0, 0, time.UTC)))
}
