package impl

import (
	"context"
	"testing"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	mockRepo "restaurant/internal/mocks/repository"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)

	return NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}), productRepo
}

func TestProductService_CreateOrUpdate_CreatesNew(t *testing.T) {
	svc, productRepo := createTestProductService(t)
	ctx := context.Background()

	productRepo.EXPECT().FindByName(ctx, "Pizza").Return(nil, repository.ErrProductNotFound)
	productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Pizza" && p.CurrentPrice.Equal(mustMoney(t, "120"))
		})).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 1 }).
		Return(nil)

	product, err := svc.CreateOrUpdateProduct(ctx, usecase.UpsertProductInput{Name: "Pizza", Price: "120.00"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}

func TestProductService_CreateOrUpdate_UpdatesPrice(t *testing.T) {
	svc, productRepo := createTestProductService(t)
	ctx := context.Background()
	existing := &entity.Product{ID: 4, Name: "Pizza", CurrentPrice: mustMoney(t, "100")}
	updated := &entity.Product{ID: 4, Name: "Pizza", CurrentPrice: mustMoney(t, "120")}

	productRepo.EXPECT().FindByName(ctx, "Pizza").Return(existing, nil)
	productRepo.EXPECT().UpdatePrice(ctx, int64(4), mustMoney(t, "120")).Return(updated, nil)

	product, err := svc.CreateOrUpdateProduct(ctx, usecase.UpsertProductInput{Name: "Pizza", Price: "120"})
	require.NoError(t, err)
	assert.Same(t, updated, product)
}

func TestProductService_CreateOrUpdate_SamePriceIsNoop(t *testing.T) {
	svc, productRepo := createTestProductService(t)
	ctx := context.Background()
	existing := &entity.Product{ID: 4, Name: "Pizza", CurrentPrice: mustMoney(t, "100")}

	productRepo.EXPECT().FindByName(ctx, "Pizza").Return(existing, nil)

	product, err := svc.CreateOrUpdateProduct(ctx, usecase.UpsertProductInput{Name: "Pizza", Price: "100.00"})
	require.NoError(t, err)
	assert.Same(t, existing, product)
}

func TestProductService_CreateOrUpdate_Validation(t *testing.T) {
	tests := []struct {
		input   usecase.UpsertProductInput
		message string
	}{
		{input: usecase.UpsertProductInput{Name: "P", Price: "10"}, message: "Product name must be at least 2 characters long"},
		{input: usecase.UpsertProductInput{Name: "Pizza", Price: "0"}, message: "Price must be greater than 0"},
		{input: usecase.UpsertProductInput{Name: "Pizza", Price: "-5"}, message: "Price must be greater than 0"},
		{input: usecase.UpsertProductInput{Name: "Pizza", Price: "abc"}, message: "Invalid amount format"},
		{input: usecase.UpsertProductInput{Name: "Pizza", Price: "99.999"}, message: "Amount must have at most 2 decimal places"},
		{input: usecase.UpsertProductInput{Name: "Pizza", Price: "123456789"}, message: "Amount must be less than 100000000"},
	}

	for _, tt := range tests {
		t.Run(tt.message+"/"+tt.input.Price, func(t *testing.T) {
			svc, _ := createTestProductService(t)

			_, err := svc.CreateOrUpdateProduct(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, domainerrors.IsValidationError(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestProductService_GetProductByName_NotFound(t *testing.T) {
	svc, productRepo := createTestProductService(t)
	productRepo.EXPECT().FindByName(mock.Anything, "Nope").Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProductByName(context.Background(), "Nope")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GetAllProducts(t *testing.T) {
	svc, productRepo := createTestProductService(t)
	products := []*entity.Product{{ID: 1, Name: "Agua"}, {ID: 2, Name: "Pizza"}}
	productRepo.EXPECT().FindAll(mock.Anything).Return(products, nil)

	got, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, products, got)
}
