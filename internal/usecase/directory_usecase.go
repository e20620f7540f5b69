package usecase

import (
	"context"

	"glbiashara/internal/domain/entity"
)

// EntityPage is the profile page of one organizational entity. Exactly one of
// Provider, Club or Institution is set, matching Kind.
type EntityPage struct {
	Kind        entity.OrgKind      `json:"kind"`
	Provider    *entity.Provider    `json:"provider,omitempty"`
	Club        *entity.Club        `json:"club,omitempty"`
	Institution *entity.Institution `json:"institution,omitempty"`
}

// DirectoryUsecase exposes the organizational entity directory: the list and
// page views users browse before connecting, and the printable QR codes
// entities hand out.
type DirectoryUsecase interface {
	ListProviders(ctx context.Context) ([]*entity.Provider, error)
	ListClubs(ctx context.Context) ([]*entity.Club, error)
	ListInstitutions(ctx context.Context) ([]*entity.Institution, error)

	// GetEntityPage resolves an entity page by kind and slug.
	GetEntityPage(ctx context.Context, kind entity.OrgKind, slug string) (*EntityPage, error)

	// GenerateConnectQR renders the PNG QR code an entity prints on posters so
	// users can scan and connect.
	GenerateConnectQR(ctx context.Context, kind entity.OrgKind, entityID int64) ([]byte, error)
}
