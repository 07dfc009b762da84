package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"plateful/config"
	"plateful/internal/domain/service"
)

const (
	defaultShareBaseURL = "http://localhost:8080"
	defaultQRSize       = 256
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	baseURL := defaultShareBaseURL
	if cfg.Share != nil && cfg.Share.BaseURL != "" {
		baseURL = strings.TrimRight(cfg.Share.BaseURL, "/")
	}

	size := defaultQRSize
	errorCorrectionLevel := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		errorCorrectionLevel = cfg.QRCode.ErrorCorrectionLevel
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
		baseURL:              baseURL,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRecipeShareQR renders a PNG QR code encoding the recipe's public share URL.
func (s *qrcodeService) GenerateRecipeShareQR(recipeID int64) ([]byte, error) {
	shareURL := s.ShareURL(recipeID)

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
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

// ShareURL builds the public link a share QR code points at.
func (s *qrcodeService) ShareURL(recipeID int64) string {
	return fmt.Sprintf("%s/recipes/%d", s.baseURL, recipeID)
}
