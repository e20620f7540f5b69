package usecase

import (
	"context"

	"glbiashara/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a marketplace listing.
type CreateProductInput struct {
	Name        string
	Description string
	Category    string
	Tags        []string
	PriceTZS    int64
}

// ListProductsInput filters and paginates the marketplace browse view.
type ListProductsInput struct {
	Category string
	Page     int
	Limit    int
}

// ProductUsecase defines the interface for marketplace operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListOwnProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)
	ListMarketplace(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)

	// SetProductActive flips listing visibility. Only the owner may do this.
	SetProductActive(ctx context.Context, callerID, productID uuid.UUID, active bool) error
}
