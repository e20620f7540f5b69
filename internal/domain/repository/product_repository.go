package repository

import (
	"context"
	"errors"

	"glbiashara/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for marketplace listing persistence.
type ProductRepository interface {
	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByOwner returns all products (active and inactive) owned by a user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// FindActiveByOwner returns up to limit active products owned by a user,
	// newest first.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Product, error)

	// ListActive returns a page of active products, optionally filtered by
	// category, newest first.
	ListActive(ctx context.Context, category string, page, limit int) ([]*entity.Product, error)

	// FindActiveByTagsOrCategory returns up to limit active products whose tag
	// set overlaps tags or whose category equals category exactly.
	FindActiveByTagsOrCategory(ctx context.Context, tags []string, category string, limit int) ([]*entity.Product, error)

	// SetActive flips the listing's visibility flag.
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}
