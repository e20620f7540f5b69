package impl

import (
	"context"
	"log/slog"

	"glbiashara/config"
	deliverycontext "glbiashara/internal/delivery/context"
	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackFeedPageSize = 10
	fallbackFeedMaxSize  = 50
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo        repository.PostRepository
	productRepo     repository.ProductRepository
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo    repository.PostRepository
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	defaultPageSize := fallbackFeedPageSize
	maxPageSize := fallbackFeedMaxSize
	if params.Config != nil && params.Config.Feed != nil {
		if params.Config.Feed.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Feed.DefaultPageSize
		}
		if params.Config.Feed.MaxPageSize > 0 {
			maxPageSize = params.Config.Feed.MaxPageSize
		}
	}

	return &postService{
		postRepo:        params.PostRepo,
		productRepo:     params.ProductRepo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost publishes a feed post. An attached product must exist and belong
// to the author, which is how sellers promote their own listings.
func (srv *postService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	if input.ProductID != nil {
		product, err := srv.productRepo.FindByID(ctx, *input.ProductID)
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to check attached product")
		}
		if product.OwnerID != authorID {
			return nil, domainerrors.ErrProductOwnershipViolation
		}
	}

	post := &entity.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Body:      input.Body,
		ProductID: input.ProductID,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("authorID", authorID))

	return post, nil
}

// GetFeed returns one page of the feed, newest first, clamped to the
// configured page size bounds.
func (srv *postService) GetFeed(ctx context.Context, page, limit int) (*usecase.FeedOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = srv.defaultPageSize
	}
	if limit > srv.maxPageSize {
		limit = srv.maxPageSize
	}

	posts, total, err := srv.postRepo.ListFeed(ctx, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feed")
	}

	return &usecase.FeedOutput{
		Posts: posts,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
