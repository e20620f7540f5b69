package service

import "glbiashara/internal/domain/entity"

// QRCodeService generates and parses connect QR codes. A connect QR encodes
// an organizational entity reference so a user can scan a poster or flyer and
// affiliate with the club, provider or institution directly.
type QRCodeService interface {
	// GenerateConnectQR renders a PNG QR code for the given entity.
	GenerateConnectQR(kind entity.OrgKind, entityID int64) ([]byte, error)

	// ParseConnectQR decodes the payload carried by a connect QR.
	ParseConnectQR(data string) (entity.OrgKind, int64, error)
}
