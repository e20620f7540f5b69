package repository

import (
	"context"

	"glbiashara/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchProfile is the attribute snapshot of the reference user the matcher
// filters candidates against. Empty or nil axes are omitted from the query;
// a profile with no populated axis matches nobody.
type MatchProfile struct {
	Profession    string
	Skills        []string
	ClubIDs       []int64
	ProviderID    *int64
	InstitutionID *int64
}

// IsEmpty reports whether no axis is populated.
func (p MatchProfile) IsEmpty() bool {
	return p.Profession == "" &&
		len(p.Skills) == 0 &&
		len(p.ClubIDs) == 0 &&
		p.ProviderID == nil &&
		p.InstitutionID == nil
}

// NetworkRepository exposes the filtered, bounded queries the network matcher
// is built on: attribute-overlap candidate selection, affiliation lookups and
// platform-wide counts.
type NetworkRepository interface {
	// FindSimilarCandidates returns up to limit users, excluding excludeID,
	// matching at least one populated axis of the profile (logical OR).
	// Selection among more than limit matches follows storage order.
	FindSimilarCandidates(ctx context.Context, excludeID uuid.UUID, profile MatchProfile, limit int) ([]*entity.User, error)

	// FindUsersByAffiliation returns up to limit users connected to the given
	// organizational entity, selected by kind.
	FindUsersByAffiliation(ctx context.Context, kind entity.OrgKind, entityID int64, limit int) ([]*entity.User, error)

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)

	// CountProviders returns the total number of telecom providers.
	CountProviders(ctx context.Context) (int64, error)

	// CountClubs returns the total number of clubs.
	CountClubs(ctx context.Context) (int64, error)

	// CountInstitutions returns the total number of institutions.
	CountInstitutions(ctx context.Context) (int64, error)

	// CountActiveProducts returns the number of active marketplace listings.
	CountActiveProducts(ctx context.Context) (int64, error)

	// CountConnectedUsers returns the number of users with at least one
	// affiliation (provider, institution, or non-empty club set).
	CountConnectedUsers(ctx context.Context) (int64, error)
}
