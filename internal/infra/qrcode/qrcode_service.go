package qrcode

import (
	"strings"
	"unicode"

	"prepmap/config"
	"prepmap/internal/domain/service"
	"prepmap/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	telScheme   = "tel:"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

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
	}
}

// NewFromConfig builds the service from the qrcode config section
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// GenerateContactQR encodes a tel: URI for phone as a PNG
func (s *qrcodeService) GenerateContactQR(phone string) ([]byte, error) {
	number := normalizePhone(phone)
	if number == "" {
		return nil, errors.Errorf("invalid phone number %q", phone)
	}

	qrCode, err := qrcode.New(telScheme+number, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseContactQR returns the number of a tel: URI
func (s *qrcodeService) ParseContactQR(qrData string) (string, error) {
	if len(qrData) < len(telScheme) || !strings.EqualFold(qrData[:len(telScheme)], telScheme) {
		return "", errors.Errorf("invalid QR code data: %q", qrData)
	}

	number := normalizePhone(qrData[len(telScheme):])
	if number == "" {
		return "", errors.Errorf("invalid QR code data: %q", qrData)
	}

	return number, nil
}

// normalizePhone keeps digits and a leading plus, dropping the spacing used in
// directory listings ("+233 20 000 0000" -> "+233200000000").
func normalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(phone) {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}

	number := b.String()
	if strings.TrimPrefix(number, "+") == "" {
		return ""
	}

	return number
}
