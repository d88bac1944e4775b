package impl

import (
	"context"
	"log/slog"
	"strings"

	"restaurant/config"
	deliverycontext "restaurant/internal/delivery/context"
	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/errors"
	"restaurant/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	currency    string
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	currency := entity.DefaultCurrency
	if params.Config != nil && params.Config.Order != nil && params.Config.Order.Currency != "" {
		currency = params.Config.Order.Currency
	}

	return &productService{
		productRepo: params.ProductRepo,
		currency:    currency,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrUpdateProduct creates the product, or changes its price when it
// already exists with a different one.
func (srv *productService) CreateOrUpdateProduct(ctx context.Context, input usecase.UpsertProductInput) (*entity.Product, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		return nil, domainerrors.NewValidationError("price", "Invalid amount format")
	}
	var price entity.Money
	if amount.IsPositive() {
		if price, err = entity.NewMoney(amount, srv.currency); err != nil {
			return nil, err
		}
	}

	candidate, err := entity.NewProduct(input.Name, price)
	if err != nil {
		return nil, err
	}
	if err := entity.CheckStorable("price", amount); err != nil {
		return nil, err
	}

	existing, err := srv.productRepo.FindByName(ctx, candidate.Name)
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		if err := srv.productRepo.Create(ctx, candidate); err != nil {
			return nil, errors.Wrap(err, "failed to create product")
		}
		srv.log(ctx).Info("Product created", slog.String("name", candidate.Name), slog.String("price", price.String()))

		return candidate, nil
	case err != nil:
		return nil, errors.Wrap(err, "failed to find product")
	}

	if existing.CurrentPrice.Equal(price) {
		return existing, nil
	}

	updated, err := srv.productRepo.UpdatePrice(ctx, existing.ID, price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product price")
	}
	srv.log(ctx).Info("Product price updated",
		slog.String("name", updated.Name),
		slog.String("from", existing.CurrentPrice.String()),
		slog.String("to", updated.CurrentPrice.String()),
	)

	return updated, nil
}

// GetAllProducts returns the catalog ordered by name.
func (srv *productService) GetAllProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProductByName looks a product up by its exact name.
func (srv *productService) GetProductByName(ctx context.Context, name string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByName(ctx, name)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}
