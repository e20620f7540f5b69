package postgres

import (
	"context"
	"strings"

	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product listing.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("product owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByOwner returns all products owned by a user, newest first.
func (repo *productRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by owner")
	}

	return toProductDomainList(rows), nil
}

// FindActiveByOwner returns up to limit active products owned by a user,
// newest first.
func (repo *productRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products by owner")
	}

	return toProductDomainList(rows), nil
}

// ListActive returns a page of active products, optionally filtered by category.
func (repo *productRepository) ListActive(ctx context.Context, category string, page, limit int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if page < 1 {
		page = 1
	}

	var rows []*model.ProductModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active products")
	}

	return toProductDomainList(rows), nil
}

// FindActiveByTagsOrCategory returns up to limit active products whose tag set
// overlaps tags or whose category equals category exactly.
func (repo *productRepository) FindActiveByTagsOrCategory(ctx context.Context, tags []string, category string, limit int) ([]*entity.Product, error) {
	if len(tags) == 0 && category == "" {
		return []*entity.Product{}, nil
	}

	var conds []string
	var args []any

	if len(tags) > 0 {
		conds = append(conds, "tags && ?")
		args = append(args, pq.StringArray(tags))
	}
	if category != "" {
		conds = append(conds, "category = ?")
		args = append(args, category)
	}

	var rows []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("("+strings.Join(conds, " OR ")+")", args...).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by tags or category")
	}

	return toProductDomainList(rows), nil
}

// SetActive flips the listing's visibility flag.
func (repo *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product visibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Tags:        []string(data.Tags),
		PriceTZS:    data.PriceTZS,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomainList(rows []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Tags:        pq.StringArray(data.Tags),
		PriceTZS:    data.PriceTZS,
		IsActive:    data.IsActive,
	}
}
