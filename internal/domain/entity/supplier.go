package entity

// Platform-owned suppliers. Products they ship are hidden when the dropper
// toggle is off.
const (
	SupplierWozMarketplace  = "Woz Marketplace"
	SupplierWozDropshipping = "Woz Dropshipping"
)

// InternalSuppliers lists the platform's own supplier names.
var InternalSuppliers = []string{SupplierWozMarketplace, SupplierWozDropshipping}

// IsInternalSupplier reports whether supplier is one of the platform's own.
func IsInternalSupplier(supplier string) bool {
	for _, s := range InternalSuppliers {
		if s == supplier {
			return true
		}
	}

	return false
}
