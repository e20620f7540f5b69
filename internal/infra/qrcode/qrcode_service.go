package qrcode

import (
	"encoding/json"
	"fmt"

	"glbiashara/internal/domain/entity"
	"glbiashara/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ConnectQRData represents the payload encoded in a connect QR code
type ConnectQRData struct {
	Kind     string `json:"kind"`
	EntityID int64  `json:"entity_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

// GenerateConnectQR generates a QR code that links to an organizational entity
func (s *qrcodeService) GenerateConnectQR(kind entity.OrgKind, entityID int64) ([]byte, error) {
	data := ConnectQRData{
		Kind:     string(kind),
		EntityID: entityID,
		Type:     "connect",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseConnectQR parses QR code data and returns the entity reference
func (s *qrcodeService) ParseConnectQR(qrData string) (entity.OrgKind, int64, error) {
	var data ConnectQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "connect" {
		return "", 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	kind, err := entity.ParseOrgKind(data.Kind)
	if err != nil {
		return "", 0, fmt.Errorf("invalid entity kind in QR code: %w", err)
	}

	if data.EntityID <= 0 {
		return "", 0, fmt.Errorf("invalid entity id: %d", data.EntityID)
	}

	return kind, data.EntityID, nil
}
