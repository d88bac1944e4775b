package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"restaurant/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func createWaiter(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(email, "Waiter")
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func money(t *testing.T, amount string) entity.Money {
	t.Helper()

	m, err := entity.NewMoneyFromString(amount, "MXN")
	require.NoError(t, err)

	return m
}

func item(t *testing.T, name, price string, quantity int) entity.OrderItem {
	t.Helper()

	i, err := entity.NewOrderItem(name, money(t, price), quantity)
	require.NoError(t, err)

	return i
}

// saveOrderAt stores an order whose creation time is pinned to createdAt.
func saveOrderAt(t *testing.T, db *gorm.DB, waiterID int64, createdAt time.Time, items ...entity.OrderItem) *entity.Order {
	t.Helper()

	order, err := entity.RestoreOrder(0, "Customer", items, waiterID, createdAt.UTC())
	require.NoError(t, err)

	saved, err := NewOrderRepository(db).Save(context.Background(), order)
	require.NoError(t, err)

	return saved
}
