package entity

import (
	"strings"
	"time"

	domainerrors "restaurant/internal/domain/errors"
)

// Product is a catalog entry with its current selling price.
type Product struct {
	ID           int64
	Name         string
	CurrentPrice Money
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewProduct validates and creates a catalog entry.
func NewProduct(name string, price Money) (*Product, error) {
	if err := validateProduct(name, price); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Product{
		Name:         name,
		CurrentPrice: price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// WithPrice returns a copy of the product carrying a new price.
func (p *Product) WithPrice(price Money) (*Product, error) {
	if err := validateProduct(p.Name, price); err != nil {
		return nil, err
	}

	updated := *p
	updated.CurrentPrice = price
	updated.UpdatedAt = time.Now().UTC()

	return &updated, nil
}

func validateProduct(name string, price Money) error {
	if len(strings.TrimSpace(name)) < minNameLength {
		return domainerrors.NewValidationError("name", "Product name must be at least 2 characters long")
	}
	if !price.Amount().IsPositive() {
		return domainerrors.NewValidationError("price", "Price must be greater than 0")
	}

	return nil
}
