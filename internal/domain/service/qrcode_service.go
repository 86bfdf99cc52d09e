package service

// QRCodeService defines the interface for product share-link QR codes
type QRCodeService interface {
	// ProductLink returns the detail view URL carrying the sku query parameter
	ProductLink(sku string) string

	// GenerateProductQR generates a PNG QR code for the product detail link
	GenerateProductQR(sku string) ([]byte, error)

	// ParseProductLink extracts the sku from a scanned detail link
	ParseProductLink(link string) (string, error)
}
