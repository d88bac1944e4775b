package handler

import (
	"net/http"

	"restaurant/internal/delivery/api/response"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
	}
}

// UpsertProductRequest sets a product's current price. Price accepts a JSON
// number or a decimal string and is never read as a float.
type UpsertProductRequest struct {
	Name  string          `json:"name" validate:"required,max=100"`
	Price decimal.Decimal `json:"price"`
}

// CreateOrUpdateProduct creates a product or updates its price
func (h *ProductHandler) CreateOrUpdateProduct(c echo.Context) error {
	var req UpsertProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	product, err := h.productUC.CreateOrUpdateProduct(c.Request().Context(), usecase.UpsertProductInput{
		Name:  req.Name,
		Price: req.Price.String(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetAllProducts lists the catalog ordered by name
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products, err := h.productUC.GetAllProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toProductResponse(p))
	}

	return response.Success(c, http.StatusOK, resp)
}
