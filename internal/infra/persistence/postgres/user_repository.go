// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ? AND deleted_at IS NULL", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile replaces the user's profession and skill set.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, profession string, skills []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"profession": profession,
			"skills":     pq.StringArray(skills),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetProvider records the user's single telecom provider affiliation.
func (repo *userRepository) SetProvider(ctx context.Context, id uuid.UUID, providerID int64) error {
	return repo.setAffiliationColumn(ctx, id, "provider_id", providerID)
}

// SetInstitution records the user's single institution affiliation.
func (repo *userRepository) SetInstitution(ctx context.Context, id uuid.UUID, institutionID int64) error {
	return repo.setAffiliationColumn(ctx, id, "institution_id", institutionID)
}

// AppendClub adds clubID to the user's club set as a single conditional
// statement. The `NOT club_ids @> ARRAY[id]` guard makes the append atomic and
// idempotent: the read-modify-write race of the naive approach cannot insert
// duplicates, and a repeated connect is a no-op.
func (repo *userRepository) AppendClub(ctx context.Context, id uuid.UUID, clubID int64) error {
	result := repo.db.WithContext(ctx).Exec(
		`UPDATE users
		    SET club_ids = array_append(club_ids, ?), updated_at = now()
		  WHERE id = ? AND deleted_at IS NULL AND NOT (club_ids @> ?)`,
		clubID, id, pq.Int64Array{clubID},
	)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to append club affiliation")
	}

	// Zero rows affected means the user is already a member (idempotent
	// success) or the user does not exist; callers verify existence first.
	return nil
}

func (repo *userRepository) setAffiliationColumn(ctx context.Context, id uuid.UUID, column string, value int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		Phone:         data.Phone,
		PasswordHash:  data.PasswordHash,
		Profession:    data.Profession,
		Skills:        []string(data.Skills),
		ClubIDs:       []int64(data.ClubIDs),
		ProviderID:    data.ProviderID,
		InstitutionID: data.InstitutionID,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		Phone:         data.Phone,
		PasswordHash:  data.PasswordHash,
		Profession:    data.Profession,
		Skills:        pq.StringArray(data.Skills),
		ClubIDs:       pq.Int64Array(data.ClubIDs),
		ProviderID:    data.ProviderID,
		InstitutionID: data.InstitutionID,
	}
}
