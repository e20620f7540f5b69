package postgres

import (
	"context"
	"strings"

	"glbiashara/internal/domain/entity"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// networkRepository implements repository.NetworkRepository. All of its
// queries are read-only; the matcher's OR predicate is pushed down to SQL so
// the bound applies before rows leave the database.
type networkRepository struct {
	db *gorm.DB
}

// NewNetworkRepository is the constructor for networkRepository.
func NewNetworkRepository(db *gorm.DB) repository.NetworkRepository {
	return &networkRepository{
		db: db,
	}
}

// FindSimilarCandidates returns up to limit users matching at least one
// populated axis of the profile, excluding excludeID. An empty profile matches
// nobody and short-circuits without touching the database.
func (repo *networkRepository) FindSimilarCandidates(ctx context.Context, excludeID uuid.UUID, profile repository.MatchProfile, limit int) ([]*entity.User, error) {
	if profile.IsEmpty() {
		return []*entity.User{}, nil
	}

	var conds []string
	var args []any

	// Empty profession is "unset" and must never act as a match axis; the
	// same holds for empty skill and club sets (empty ∩ empty is no match).
	if profile.Profession != "" {
		conds = append(conds, "profession = ?")
		args = append(args, profile.Profession)
	}
	if len(profile.Skills) > 0 {
		conds = append(conds, "skills && ?")
		args = append(args, pq.StringArray(profile.Skills))
	}
	if len(profile.ClubIDs) > 0 {
		conds = append(conds, "club_ids && ?")
		args = append(args, pq.Int64Array(profile.ClubIDs))
	}
	if profile.ProviderID != nil {
		conds = append(conds, "provider_id = ?")
		args = append(args, *profile.ProviderID)
	}
	if profile.InstitutionID != nil {
		conds = append(conds, "institution_id = ?")
		args = append(args, *profile.InstitutionID)
	}

	var rows []*model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id <> ? AND deleted_at IS NULL", excludeID).
		Where("("+strings.Join(conds, " OR ")+")", args...).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find similar candidates")
	}

	return toUserDomainList(rows), nil
}

// FindUsersByAffiliation returns up to limit users connected to the given
// organizational entity.
func (repo *networkRepository) FindUsersByAffiliation(ctx context.Context, kind entity.OrgKind, entityID int64, limit int) ([]*entity.User, error) {
	query := repo.db.WithContext(ctx).Where("deleted_at IS NULL")

	switch kind {
	case entity.OrgKindProvider:
		query = query.Where("provider_id = ?", entityID)
	case entity.OrgKindClub:
		query = query.Where("club_ids @> ?", pq.Int64Array{entityID})
	case entity.OrgKindInstitution:
		query = query.Where("institution_id = ?", entityID)
	default:
		return nil, errors.Wrapf(entity.ErrUnknownOrgKind, "%q", kind)
	}

	var rows []*model.UserModel
	if err := query.Limit(limit).Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find users by %s affiliation", kind)
	}

	return toUserDomainList(rows), nil
}

// CountUsers returns the total number of users.
func (repo *networkRepository) CountUsers(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.db.Model(&model.UserModel{}).Where("deleted_at IS NULL"), "users")
}

// CountProviders returns the total number of telecom providers.
func (repo *networkRepository) CountProviders(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.db.Model(&model.ProviderModel{}), "providers")
}

// CountClubs returns the total number of clubs.
func (repo *networkRepository) CountClubs(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.db.Model(&model.ClubModel{}), "clubs")
}

// CountInstitutions returns the total number of institutions.
func (repo *networkRepository) CountInstitutions(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.db.Model(&model.InstitutionModel{}), "institutions")
}

// CountActiveProducts returns the number of active marketplace listings.
func (repo *networkRepository) CountActiveProducts(ctx context.Context) (int64, error) {
	return repo.count(ctx, repo.db.Model(&model.ProductModel{}).Where("is_active = ?", true), "active products")
}

// CountConnectedUsers returns the number of users with at least one affiliation.
func (repo *networkRepository) CountConnectedUsers(ctx context.Context) (int64, error) {
	query := repo.db.Model(&model.UserModel{}).
		Where("deleted_at IS NULL").
		Where("provider_id IS NOT NULL OR institution_id IS NOT NULL OR cardinality(club_ids) > 0")

	return repo.count(ctx, query, "connected users")
}

func (repo *networkRepository) count(ctx context.Context, query *gorm.DB, what string) (int64, error) {
	var n int64
	if err := query.WithContext(ctx).Count(&n).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count %s", what)
	}

	return n, nil
}

func toUserDomainList(rows []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users
}
