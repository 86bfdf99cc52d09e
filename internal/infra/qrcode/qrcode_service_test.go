package qrcode

import (
	"testing"

	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://woz.com.py")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ProductLink(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://woz.com.py/")

	assert.Equal(t, "https://woz.com.py/producto.html?sku=woz-sku-0001", service.ProductLink("woz-sku-0001"))
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://woz.com.py")

	qrBytes, err := service.GenerateProductQR("woz-sku-0001")
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateProductQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://woz.com.py")

			qrBytes, err := service.GenerateProductQR("woz-sku-0042")
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseProductLink(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://woz.com.py")

	sku, err := service.ParseProductLink(service.ProductLink("woz-sku-0123"))
	require.NoError(t, err)
	assert.Equal(t, "woz-sku-0123", sku)
}

func TestQRCodeService_ParseProductLink_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://woz.com.py")

	tests := []struct {
		name string
		link string
	}{
		{"Wrong page", "https://woz.com.py/checkout.html?sku=woz-sku-0001"},
		{"Malformed URL", "://bad"},
		{"Missing sku", "https://woz.com.py/producto.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseProductLink(tt.link)
			assert.Error(t, err)
		})
	}

	_, err := service.ParseProductLink("https://woz.com.py/producto.html?sku=")
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
