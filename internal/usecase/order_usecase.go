package usecase

import (
	"context"
	"time"

	"restaurant/internal/domain/entity"
)

// --- Input DTOs ---

// OrderItemInput is one requested line of a new order. UnitPrice is a decimal string
// so prices never pass through binary floating point.
type OrderItemInput struct {
	ProductName string
	UnitPrice   string
	Quantity    int
}

// CreateOrderInput defines the data required to take a new order.
type CreateOrderInput struct {
	CustomerName string
	Items        []OrderItemInput
}

// DateRangeInput bounds listings and reports. Zero values select the default window
// ending now.
type DateRangeInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// OrderUsecase defines the order-related business operations.
type OrderUsecase interface {
	// CreateOrder builds and stores an order on behalf of the waiter identified by waiterEmail.
	CreateOrder(ctx context.Context, input CreateOrderInput, waiterEmail string) (*entity.Order, error)

	// GetOrder retrieves a stored order.
	GetOrder(ctx context.Context, id int64) (*entity.Order, error)

	// ListOrders returns the orders created in the window.
	ListOrders(ctx context.Context, window DateRangeInput) ([]*entity.Order, error)

	// GetSalesReport aggregates sold quantities and revenue per product name.
	GetSalesReport(ctx context.Context, window DateRangeInput) ([]entity.SalesReportRow, error)
}
