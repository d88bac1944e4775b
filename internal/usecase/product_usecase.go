package usecase

import (
	"context"

	"restaurant/internal/domain/entity"
)

// UpsertProductInput sets the current price of a product, creating it when unknown.
type UpsertProductInput struct {
	Name  string
	Price string
}

// ProductUsecase defines catalog operations.
type ProductUsecase interface {
	CreateOrUpdateProduct(ctx context.Context, input UpsertProductInput) (*entity.Product, error)
	GetAllProducts(ctx context.Context) ([]*entity.Product, error)
	GetProductByName(ctx context.Context, name string) (*entity.Product, error)
}
