package postgres

import (
	"context"
	"testing"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_CreateFindAll(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"Tacos", "Agua", "Pizza"} {
		product, err := entity.NewProduct(name, money(t, "25.50"))
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, product))
		assert.NotZero(t, product.ID)
	}

	products, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Agua", products[0].Name)
	assert.Equal(t, "Pizza", products[1].Name)
	assert.Equal(t, "Tacos", products[2].Name)
	assert.Equal(t, "25.50", products[0].CurrentPrice.Amount().StringFixed(entity.MoneyScale))
	assert.Equal(t, "MXN", products[0].CurrentPrice.Currency())
}

func TestProductRepository_UpdatePrice(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	product, err := entity.NewProduct("Pizza", money(t, "100"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, product))

	updated, err := repo.UpdatePrice(ctx, product.ID, money(t, "120.50"))
	require.NoError(t, err)
	assert.Equal(t, "120.50", updated.CurrentPrice.Amount().StringFixed(entity.MoneyScale))

	stored, err := repo.FindByName(ctx, "Pizza")
	require.NoError(t, err)
	assert.True(t, stored.CurrentPrice.Equal(money(t, "120.50")))

	_, err = repo.UpdatePrice(ctx, 404, money(t, "1"))
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_Errors(t *testing.T) {
	repo := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByName(ctx, "Nothing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	first, err := entity.NewProduct("Pizza", money(t, "100"))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := entity.NewProduct("Pizza", money(t, "90"))
	require.NoError(t, err)
	err = repo.Create(ctx, second)
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)
}
