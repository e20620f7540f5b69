package postgres

import (
	"context"
	"strings"

	"glbiashara/internal/domain/entity"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/infra/persistence/model"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orgRepository implements repository.OrgRepository over the three
// organizational entity tables.
type orgRepository struct {
	db *gorm.DB
}

// NewOrgRepository is the constructor for orgRepository.
func NewOrgRepository(db *gorm.DB) repository.OrgRepository {
	return &orgRepository{
		db: db,
	}
}

// ListProviders returns all active telecom providers.
func (repo *orgRepository) ListProviders(ctx context.Context) ([]*entity.Provider, error) {
	var rows []*model.ProviderModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	providers := make([]*entity.Provider, 0, len(rows))
	for _, row := range rows {
		providers = append(providers, toProviderDomain(row))
	}

	return providers, nil
}

// ListClubs returns all clubs.
func (repo *orgRepository) ListClubs(ctx context.Context) ([]*entity.Club, error) {
	var rows []*model.ClubModel
	if err := repo.db.WithContext(ctx).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clubs")
	}

	return toClubDomainList(rows), nil
}

// ListInstitutions returns up to limit active institutions.
func (repo *orgRepository) ListInstitutions(ctx context.Context, limit int) ([]*entity.Institution, error) {
	var rows []*model.InstitutionModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list institutions")
	}

	institutions := make([]*entity.Institution, 0, len(rows))
	for _, row := range rows {
		institutions = append(institutions, toInstitutionDomain(row))
	}

	return institutions, nil
}

// FindClubsByIDsOrSports returns clubs whose id is in ids or whose sport
// matches any of sports, case-insensitive.
func (repo *orgRepository) FindClubsByIDsOrSports(ctx context.Context, ids []int64, sports []string) ([]*entity.Club, error) {
	if len(ids) == 0 && len(sports) == 0 {
		return []*entity.Club{}, nil
	}

	var conds []string
	var args []any

	if len(ids) > 0 {
		conds = append(conds, "id = ANY(?)")
		args = append(args, pq.Int64Array(ids))
	}
	if len(sports) > 0 {
		lowered := make([]string, 0, len(sports))
		for _, sport := range sports {
			lowered = append(lowered, strings.ToLower(sport))
		}
		conds = append(conds, "lower(sport) = ANY(?)")
		args = append(args, pq.StringArray(lowered))
	}

	var rows []*model.ClubModel
	if err := repo.db.WithContext(ctx).
		Where(strings.Join(conds, " OR "), args...).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find clubs by ids or sports")
	}

	return toClubDomainList(rows), nil
}

// FindProviderBySlug retrieves a provider by its unique slug.
func (repo *orgRepository) FindProviderBySlug(ctx context.Context, slug string) (*entity.Provider, error) {
	var row model.ProviderModel
	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by slug")
	}

	return toProviderDomain(&row), nil
}

// FindClubBySlug retrieves a club by its unique slug.
func (repo *orgRepository) FindClubBySlug(ctx context.Context, slug string) (*entity.Club, error) {
	var row model.ClubModel
	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClubNotFound
		}

		return nil, errors.Wrap(err, "failed to find club by slug")
	}

	return toClubDomain(&row), nil
}

// FindInstitutionBySlug retrieves an institution by its unique slug.
func (repo *orgRepository) FindInstitutionBySlug(ctx context.Context, slug string) (*entity.Institution, error) {
	var row model.InstitutionModel
	if err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInstitutionNotFound
		}

		return nil, errors.Wrap(err, "failed to find institution by slug")
	}

	return toInstitutionDomain(&row), nil
}

// Exists reports whether an entity of the given kind and id exists.
func (repo *orgRepository) Exists(ctx context.Context, kind entity.OrgKind, id int64) (bool, error) {
	var query *gorm.DB
	switch kind {
	case entity.OrgKindProvider:
		query = repo.db.Model(&model.ProviderModel{})
	case entity.OrgKindClub:
		query = repo.db.Model(&model.ClubModel{})
	case entity.OrgKindInstitution:
		query = repo.db.Model(&model.InstitutionModel{})
	default:
		return false, errors.Wrapf(entity.ErrUnknownOrgKind, "%q", kind)
	}

	var n int64
	if err := query.WithContext(ctx).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check %s existence", kind)
	}

	return n > 0, nil
}

// --- Mapper Functions ---

func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		IsActive:  data.IsActive,
		Content:   data.Content.Data(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toClubDomain(data *model.ClubModel) *entity.Club {
	if data == nil {
		return nil
	}

	return &entity.Club{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Sport:     data.Sport,
		Content:   data.Content.Data(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toClubDomainList(rows []*model.ClubModel) []*entity.Club {
	clubs := make([]*entity.Club, 0, len(rows))
	for _, row := range rows {
		clubs = append(clubs, toClubDomain(row))
	}

	return clubs
}

func toInstitutionDomain(data *model.InstitutionModel) *entity.Institution {
	if data == nil {
		return nil
	}

	return &entity.Institution{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Region:    data.Region,
		IsActive:  data.IsActive,
		Content:   data.Content.Data(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
