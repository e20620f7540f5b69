package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

func newTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, productRepo
}

func TestProductService_CreateProduct(t *testing.T) {
	service, productRepo := newTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := service.CreateProduct(ctx, ownerID, &usecase.CreateProductInput{
		Name:        "Kitenge dress",
		Description: "Handmade kitenge dress",
		Category:    "fundi cherehani",
		Tags:        []string{"tailoring", "fashion"},
		PriceTZS:    45000,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, product.OwnerID)
	assert.Equal(t, int64(45000), product.PriceTZS)
	// New listings are visible immediately.
	assert.True(t, product.IsActive)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	service, productRepo := newTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, productID)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListMarketplace_DefaultsLimit(t *testing.T) {
	service, productRepo := newTestProductService(t)
	ctx := context.Background()

	products := []*entity.Product{{ID: uuid.New(), Name: "Mango crate", IsActive: true}}

	productRepo.EXPECT().
		ListActive(ctx, "mkulima", 1, defaultMarketplacePageSize).
		Return(products, nil)

	got, err := service.ListMarketplace(ctx, &usecase.ListProductsInput{Category: "mkulima", Page: 1})
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestProductService_SetProductActive(t *testing.T) {
	service, productRepo := newTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	product := &entity.Product{ID: uuid.New(), OwnerID: ownerID, IsActive: true}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	productRepo.EXPECT().SetActive(ctx, product.ID, false).Return(nil)

	err := service.SetProductActive(ctx, ownerID, product.ID, false)
	require.NoError(t, err)
}

func TestProductService_SetProductActive_NotOwner(t *testing.T) {
	service, productRepo := newTestProductService(t)
	ctx := context.Background()

	product := &entity.Product{ID: uuid.New(), OwnerID: uuid.New(), IsActive: true}

	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	err := service.SetProductActive(ctx, uuid.New(), product.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}
