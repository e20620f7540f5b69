package impl

import (
	"context"
	"log/slog"

	deliverycontext "glbiashara/internal/delivery/context"
	"glbiashara/internal/domain/entity"
	domainerrors "glbiashara/internal/domain/errors"
	"glbiashara/internal/domain/repository"
	"glbiashara/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMarketplacePageSize = 20

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct publishes a new marketplace listing owned by the caller.
// Listings start active.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		PriceTZS:    input.PriceTZS,
		IsActive:    true,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("ownerID", ownerID))

	return product, nil
}

// GetProduct returns a single listing by ID.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListOwnProducts returns every listing owned by the caller, active or not.
func (srv *productService) ListOwnProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own products")
	}

	return products, nil
}

// ListMarketplace returns a page of active listings, optionally filtered by
// category.
func (srv *productService) ListMarketplace(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultMarketplacePageSize
	}

	products, err := srv.productRepo.ListActive(ctx, input.Category, input.Page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list marketplace products")
	}

	return products, nil
}

// SetProductActive flips listing visibility. Only the owner may do this.
func (srv *productService) SetProductActive(ctx context.Context, callerID, productID uuid.UUID, active bool) error {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find product")
	}

	if product.OwnerID != callerID {
		return domainerrors.ErrProductOwnershipViolation
	}

	if err := srv.productRepo.SetActive(ctx, productID, active); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product visibility")
	}

	srv.log(ctx).Info("Product visibility updated",
		slog.Any("productID", productID),
		slog.Bool("active", active))

	return nil
}
