package usecase

import (
	"context"

	"glbiashara/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// SimilarUser is one matched user together with the attribute axes the match
// came from. MatchScore counts shared axes, not shared values.
type SimilarUser struct {
	User             *entity.User
	SharedAttributes []string // subset of "profession", "skills", "clubs", "provider", "institution"
	MatchScore       int
}

// SimilarUsersOutput is the result of a similarity lookup. When the reference
// user does not exist, Found is false and Users is empty; that case is a
// successful response, not an error.
type SimilarUsersOutput struct {
	Found bool
	Users []*SimilarUser
}

// ConnectedBusiness is one active product of a user connected to an
// organizational entity, paired with a summary of its seller.
type ConnectedBusiness struct {
	Product    *entity.Product `json:"product"`
	SellerID   uuid.UUID       `json:"sellerId"`
	SellerName string          `json:"sellerName"`
	Profession string          `json:"profession,omitempty"`
}

// InterconnectivityStats aggregates platform-wide counts. ConnectionRate is a
// percentage in [0,100]; it is 0 when there are no users at all.
type InterconnectivityStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalProviders    int64   `json:"totalProviders"`
	TotalClubs        int64   `json:"totalClubs"`
	TotalInstitutions int64   `json:"totalInstitutions"`
	TotalProducts     int64   `json:"totalProducts"`
	ConnectedUsers    int64   `json:"connectedUsers"`
	ConnectionRate    float64 `json:"connectionRate"`
}

// Recommendations bundles everything surfaced to a user on their home screen.
type Recommendations struct {
	Providers    []*entity.Provider
	Clubs        []*entity.Club
	Institutions []*entity.Institution
	Products     []*entity.Product
	SimilarUsers []*SimilarUser
}

// ConnectOutput reports the affiliation state after a connect call.
type ConnectOutput struct {
	User *entity.User
}

// NetworkUsecase is the attribute-overlap matcher at the core of the platform.
// It finds similar users, surfaces businesses reachable through shared
// affiliations, aggregates interconnectivity statistics, and manages the
// user-to-entity connections those queries are built on.
type NetworkUsecase interface {
	// FindSimilarUsers returns up to 20 users sharing at least one attribute
	// axis with the given user, ranked by how many axes they share.
	FindSimilarUsers(ctx context.Context, userID uuid.UUID) (*SimilarUsersOutput, error)

	// GetConnectedBusinesses returns the active products of users connected to
	// an organizational entity: at most 20 users, at most 2 products each.
	GetConnectedBusinesses(ctx context.Context, kind entity.OrgKind, entityID int64) ([]*ConnectedBusiness, error)

	// GetInterconnectivityStats aggregates platform-wide counts. Any failing
	// count fails the whole call.
	GetInterconnectivityStats(ctx context.Context) (*InterconnectivityStats, error)

	// GetPersonalizedRecommendations assembles providers, clubs, institutions,
	// products and similar users relevant to the given user.
	GetPersonalizedRecommendations(ctx context.Context, userID uuid.UUID) (*Recommendations, error)

	// ConnectToEntity affiliates the user with an organizational entity.
	// Connecting to a club the user already belongs to is a no-op.
	ConnectToEntity(ctx context.Context, userID uuid.UUID, kind entity.OrgKind, entityID int64) (*ConnectOutput, error)

	// ConnectFromQR parses a scanned connect QR payload and performs the
	// affiliation it encodes.
	ConnectFromQR(ctx context.Context, userID uuid.UUID, qrData string) (*ConnectOutput, error)
}
