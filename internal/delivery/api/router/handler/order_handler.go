package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"restaurant/internal/delivery/api/middleware"
	"restaurant/internal/delivery/api/response"
	deliverycontext "restaurant/internal/delivery/context"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Layouts accepted for start_date and end_date. Values without an offset are UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves order intake, order reads and the sales report.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one requested line. UnitPrice accepts a JSON number or a
// decimal string.
type OrderItemRequest struct {
	ProductName string          `json:"product_name" validate:"max=100"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

// CreateOrderRequest represents the request body for taking an order
type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"max=100"`
	Items        []OrderItemRequest `json:"items" validate:"dive"`
}

// CreateOrder takes a new order on behalf of the authenticated waiter
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	waiter, ok := middleware.GetWaiter(c)
	if !ok {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "Not authenticated")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	input := usecase.CreateOrderInput{
		CustomerName: req.CustomerName,
		Items:        make([]usecase.OrderItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.OrderItemInput{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.String(),
			Quantity:    item.Quantity,
		})
	}

	ctx := c.Request().Context()
	order, err := h.orderUC.CreateOrder(ctx, input, waiter.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp, err := toOrderResponse(order)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Order created",
		slog.Int64("order_id", order.ID()),
		slog.Int("items", len(resp.Items)),
	)

	return response.Success(c, http.StatusCreated, resp)
}

// GetOrder returns one order by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return response.HandleAppError(c, domainerrors.NewValidationError("id", "Invalid order id"))
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp, err := toOrderResponse(order)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, resp)
}

// ListOrders returns the orders created between start_date and end_date
func (h *OrderHandler) ListOrders(c echo.Context) error {
	window, err := parseDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		o, err := toOrderResponse(order)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		resp = append(resp, o)
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetSalesReport aggregates sales per product between start_date and end_date
func (h *OrderHandler) GetSalesReport(c echo.Context) error {
	window, err := parseDateRange(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rows, err := h.orderUC.GetSalesReport(c.Request().Context(), window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSalesReportResponse(rows))
}

func parseDateRange(c echo.Context) (usecase.DateRangeInput, error) {
	var (
		window usecase.DateRangeInput
		err    error
	)

	if window.StartDate, err = parseDateParam(c, "start_date"); err != nil {
		return usecase.DateRangeInput{}, err
	}
	if window.EndDate, err = parseDateParam(c, "end_date"); err != nil {
		return usecase.DateRangeInput{}, err
	}

	return window, nil
}

func parseDateParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, domainerrors.NewValidationError(name, "Invalid datetime format")
}
