package postgres

import (
	"context"

	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// Create persists a new feed post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("post author or attached product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// ListFeed returns a page of posts, newest first, preloading the author and
// the attached product for feed rendering.
func (repo *postRepository) ListFeed(ctx context.Context, page, limit int) ([]*entity.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}

	var rows []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Preload("Product").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list feed posts")
	}

	posts := make([]*entity.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, toPostDomain(row))
	}

	return posts, total, nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Body:      data.Body,
		ProductID: data.ProductID,
		Author:    toUserDomain(data.Author),
		Product:   toProductDomain(data.Product),
		CreatedAt: data.CreatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Body:      data.Body,
		ProductID: data.ProductID,
	}
}
