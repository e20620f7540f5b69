package usecase

import (
	"context"

	"glbiashara/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePostInput defines the data required to publish a feed post.
type CreatePostInput struct {
	Body      string
	ProductID *uuid.UUID // optional attached marketplace listing
}

// FeedOutput is one page of the social feed.
type FeedOutput struct {
	Posts []*entity.Post
	Total int64
	Page  int
	Limit int
}

// PostUsecase defines the interface for the social feed.
type PostUsecase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, input *CreatePostInput) (*entity.Post, error)
	GetFeed(ctx context.Context, page, limit int) (*FeedOutput, error)
}
