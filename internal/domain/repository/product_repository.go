package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence operations for catalog entries.
type ProductRepository interface {
	// Create persists a new product and assigns its ID.
	Create(ctx context.Context, product *entity.Product) error

	// FindByName retrieves a product by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindAll returns every product ordered by name.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// UpdatePrice changes the current price of a product and returns the stored row.
	UpdatePrice(ctx context.Context, id int64, price entity.Money) (*entity.Product, error)
}
