package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateContactQR encodes a tel: URI for phone as a PNG QR code
	GenerateContactQR(phone string) ([]byte, error)

	// ParseContactQR returns the phone number carried by a tel: URI
	ParseContactQR(qrData string) (string, error)
}
