package repository

import (
	"context"
	"errors"

	"glbiashara/internal/domain/entity"
)

// Sentinel errors for organizational entity lookups.
var (
	// ErrProviderNotFound is returned when a telecom provider is not found.
	ErrProviderNotFound = errors.New("provider not found")
	// ErrClubNotFound is returned when a club is not found.
	ErrClubNotFound = errors.New("club not found")
	// ErrInstitutionNotFound is returned when an institution is not found.
	ErrInstitutionNotFound = errors.New("institution not found")
)

// OrgRepository defines lookups over the organizational entity directory
// (providers, clubs, institutions). All three are simple named join targets.
type OrgRepository interface {
	// ListProviders returns all active telecom providers.
	ListProviders(ctx context.Context) ([]*entity.Provider, error)

	// ListClubs returns all clubs.
	ListClubs(ctx context.Context) ([]*entity.Club, error)

	// ListInstitutions returns up to limit active institutions.
	ListInstitutions(ctx context.Context, limit int) ([]*entity.Institution, error)

	// FindClubsByIDsOrSports returns clubs whose id is in ids or whose sport
	// matches any of sports (case-insensitive). Either slice may be empty.
	FindClubsByIDsOrSports(ctx context.Context, ids []int64, sports []string) ([]*entity.Club, error)

	// FindProviderBySlug retrieves a provider by its unique slug.
	FindProviderBySlug(ctx context.Context, slug string) (*entity.Provider, error)

	// FindClubBySlug retrieves a club by its unique slug.
	FindClubBySlug(ctx context.Context, slug string) (*entity.Club, error)

	// FindInstitutionBySlug retrieves an institution by its unique slug.
	FindInstitutionBySlug(ctx context.Context, slug string) (*entity.Institution, error)

	// Exists reports whether an entity of the given kind and id exists.
	Exists(ctx context.Context, kind entity.OrgKind, id int64) (bool, error)
}
