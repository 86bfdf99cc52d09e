package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"wozmarket/config"
	domainerrors "wozmarket/internal/domain/errors"
	"wozmarket/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	detailPage = "producto.html"
	skuParam   = "sku"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig creates the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// ProductLink returns <baseURL>/producto.html?sku=<sku>
func (s *qrcodeService) ProductLink(sku string) string {
	q := url.Values{}
	q.Set(skuParam, sku)

	return s.baseURL + "/" + detailPage + "?" + q.Encode()
}

// GenerateProductQR generates a QR code for the product detail link
func (s *qrcodeService) GenerateProductQR(sku string) ([]byte, error) {
	// Generate QR code
	qrCode, err := qrcode.New(s.ProductLink(sku), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProductLink extracts the sku parameter from a detail link
func (s *qrcodeService) ParseProductLink(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("failed to parse product link: %w", err)
	}

	// Validate page
	if !strings.HasSuffix(u.Path, "/"+detailPage) && u.Path != detailPage {
		return "", fmt.Errorf("invalid product link page: %s", u.Path)
	}

	sku := u.Query().Get(skuParam)
	if sku == "" {
		return "", domainerrors.ErrProductNotFound.WithDetails("link carries no sku")
	}

	return sku, nil
}
