package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/entity"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for the Order aggregate.
type OrderRepository interface {
	// Save inserts the order together with its items and returns the stored aggregate
	// with database-assigned IDs. Orders are never updated afterwards.
	Save(ctx context.Context, order *entity.Order) (*entity.Order, error)

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id int64) (*entity.Order, error)

	// FindByDateRange returns the orders created inside the window, bounds included.
	FindByDateRange(ctx context.Context, window entity.DateTimeRange) ([]*entity.Order, error)

	// GetProductSalesReport groups the items of the orders created inside the window by
	// product name, ordered by total quantity descending then product name ascending.
	GetProductSalesReport(ctx context.Context, window entity.DateTimeRange) ([]entity.SalesReportRow, error)
}
