package repository

import (
	"context"

	"glbiashara/internal/domain/entity"
)

// PostRepository defines the operations for social feed persistence.
type PostRepository interface {
	// Create persists a new feed post.
	Create(ctx context.Context, post *entity.Post) error

	// ListFeed returns a page of posts, newest first, each enriched with the
	// author summary and the attached product when present. The second return
	// value is the total post count for pagination.
	ListFeed(ctx context.Context, page, limit int) ([]*entity.Post, int64, error)
}
