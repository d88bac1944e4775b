package postgres

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/domain/entity"
	"restaurant/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Commit(t *testing.T) {
	db := newTestDB(t)
	waiter := createWaiter(t, db, "waiter@email.com")
	tm := NewTransactionManager(db)

	var orderID int64
	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		order, err := entity.NewOrder("Cust", []entity.OrderItem{item(t, "Pizza", "10", 1)}, waiter.ID)
		if err != nil {
			return err
		}
		saved, err := factory.NewOrderRepository().Save(context.Background(), order)
		if err != nil {
			return err
		}
		orderID = saved.ID()

		return nil
	})
	require.NoError(t, err)

	_, err = NewOrderRepository(db).FindByID(context.Background(), orderID)
	assert.NoError(t, err)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		product, err := entity.NewProduct("Pizza", money(t, "10"))
		if err != nil {
			return err
		}
		if err := factory.NewProductRepository().Create(context.Background(), product); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = NewProductRepository(db).FindByName(context.Background(), "Pizza")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
			user, err := entity.NewUser("panic@email.com", "Panic")
			require.NoError(t, err)
			require.NoError(t, factory.NewUserRepository().Create(context.Background(), user))
			panic("unexpected")
		})
	})

	_, err := NewUserRepository(db).FindByEmail(context.Background(), "panic@email.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
