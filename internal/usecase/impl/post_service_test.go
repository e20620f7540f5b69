package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"glbiashara/config"
	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	mockRepo "glbiashara/internal/mocks/repository"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPostService(t *testing.T) (usecase.PostUsecase, *mockRepo.MockPostRepository, *mockRepo.MockProductRepository) {
	t.Helper()

	postRepo := mockRepo.NewMockPostRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewPostService(PostServiceParams{
		PostRepo:    postRepo,
		ProductRepo: productRepo,
		Config: &config.Config{
			Feed: &config.FeedConfig{DefaultPageSize: 10, MaxPageSize: 50},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, postRepo, productRepo
}

func TestPostService_CreatePost(t *testing.T) {
	service, postRepo, _ := newTestPostService(t)
	ctx := context.Background()
	authorID := uuid.New()

	postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := service.CreatePost(ctx, authorID, &usecase.CreatePostInput{
		Body: "Karibuni dukani kwangu!",
	})
	require.NoError(t, err)
	assert.Equal(t, authorID, post.AuthorID)
	assert.Nil(t, post.ProductID)
}

func TestPostService_CreatePost_WithOwnProduct(t *testing.T) {
	service, postRepo, productRepo := newTestPostService(t)
	ctx := context.Background()
	authorID := uuid.New()

	product := &entity.Product{ID: uuid.New(), OwnerID: authorID, IsActive: true}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	postRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Post")).Return(nil)

	post, err := service.CreatePost(ctx, authorID, &usecase.CreatePostInput{
		Body:      "Nguo mpya zimefika",
		ProductID: &product.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, post.ProductID)
	assert.Equal(t, product.ID, *post.ProductID)
}

func TestPostService_CreatePost_ForeignProduct(t *testing.T) {
	service, _, productRepo := newTestPostService(t)
	ctx := context.Background()

	product := &entity.Product{ID: uuid.New(), OwnerID: uuid.New(), IsActive: true}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	post, err := service.CreatePost(ctx, uuid.New(), &usecase.CreatePostInput{
		Body:      "Si bidhaa yangu",
		ProductID: &product.ID,
	})
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestPostService_CreatePost_MissingProduct(t *testing.T) {
	service, _, productRepo := newTestPostService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	post, err := service.CreatePost(ctx, uuid.New(), &usecase.CreatePostInput{
		Body:      "Bidhaa haipo",
		ProductID: &productID,
	})
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestPostService_GetFeed_ClampsPagination(t *testing.T) {
	service, postRepo, _ := newTestPostService(t)
	ctx := context.Background()

	posts := []*entity.Post{{ID: uuid.New(), Body: "Habari za leo"}}

	// Page 0 becomes 1, limit 0 becomes the default, oversized limit is
	// clamped to the maximum.
	postRepo.EXPECT().ListFeed(ctx, 1, 10).Return(posts, 1, nil)

	out, err := service.GetFeed(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, posts, out.Posts)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 10, out.Limit)

	postRepo.EXPECT().ListFeed(ctx, 2, 50).Return([]*entity.Post{}, 1, nil)

	out, err = service.GetFeed(ctx, 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, out.Limit)
}
