package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	userRepo   repository.UserRepository
	currency   string
	reportDays int
	now        func() time.Time
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	currency := entity.DefaultCurrency
	reportDays := 30
	if params.Config != nil && params.Config.Order != nil {
		if params.Config.Order.Currency != "" {
			currency = params.Config.Order.Currency
		}
		if params.Config.Order.ReportDefaultDays > 0 {
			reportDays = params.Config.Order.ReportDefaultDays
		}
	}

	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		userRepo:   params.UserRepo,
		currency:   currency,
		reportDays: reportDays,
		now:        time.Now,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder resolves the waiter, builds the aggregate and stores it in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput, waiterEmail string) (*entity.Order, error) {
	waiterID, err := srv.resolveWaiter(ctx, waiterEmail)
	if err != nil {
		return nil, err
	}

	items, err := srv.buildItems(input.Items)
	if err != nil {
		return nil, err
	}

	order, err := entity.NewOrder(input.CustomerName, items, waiterID)
	if err != nil {
		return nil, err
	}

	var saved *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var saveErr error
		saved, saveErr = repoFactory.NewOrderRepository().Save(ctx, order)

		return saveErr
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save order", slog.Int64("waiterID", waiterID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.Int64("orderID", saved.ID()),
		slog.Int64("waiterID", waiterID),
		slog.Int("items", len(saved.Items())),
	)

	return saved, nil
}

func (srv *orderService) resolveWaiter(ctx context.Context, email string) (int64, error) {
	waiterID, err := srv.userRepo.FindIDByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Unknown waiter for new order", slog.String("email", email))

		return 0, domainerrors.NewValidationError("waiter", fmt.Sprintf("Waiter with email %s not found", email))
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to resolve waiter")
	}

	return waiterID, nil
}

func (srv *orderService) buildItems(inputs []usecase.OrderItemInput) ([]entity.OrderItem, error) {
	items := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		amount, err := decimal.NewFromString(strings.TrimSpace(in.UnitPrice))
		if err != nil {
			return nil, domainerrors.NewValidationError("unit_price", "Invalid amount format")
		}

		// A non-positive amount leaves price unset so NewOrderItem reports the
		// item's rule violations in their usual order.
		var price entity.Money
		if amount.IsPositive() {
			if price, err = entity.NewMoney(amount, srv.currency); err != nil {
				return nil, err
			}
		}

		item, err := entity.NewOrderItem(in.ProductName, price, in.Quantity)
		if err != nil {
			return nil, err
		}
		if err := entity.CheckStorable("unit_price", amount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetOrder retrieves a stored order.
func (srv *orderService) GetOrder(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(fmt.Sprintf("order %d", id))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// ListOrders returns the orders created inside the window.
func (srv *orderService) ListOrders(ctx context.Context, input usecase.DateRangeInput) ([]*entity.Order, error) {
	window, err := srv.window(input)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindByDateRange(ctx, window)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetSalesReport validates the window before any query runs.
func (srv *orderService) GetSalesReport(ctx context.Context, input usecase.DateRangeInput) ([]entity.SalesReportRow, error) {
	window, err := srv.window(input)
	if err != nil {
		return nil, err
	}

	rows, err := srv.orderRepo.GetProductSalesReport(ctx, window)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales report")
	}

	srv.log(ctx).Debug("Sales report built",
		slog.Time("start", window.Start()),
		slog.Time("end", window.End()),
		slog.Int("products", len(rows)),
	)

	return rows, nil
}

// window fills in missing bounds: the end defaults to now and the start to the
// configured number of days before the end.
func (srv *orderService) window(input usecase.DateRangeInput) (entity.DateTimeRange, error) {
	end := input.EndDate
	if end.IsZero() {
		end = srv.now()
	}

	start := input.StartDate
	if start.IsZero() {
		return entity.LastDays(end, srv.reportDays), nil
	}

	return entity.NewDateTimeRange(start, end)
}
