package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateStorefrontQR generates a QR code pointing at a store's URL,
	// attached to the welcome email after provisioning.
	GenerateStorefrontQR(storeURL string) ([]byte, error)
}
