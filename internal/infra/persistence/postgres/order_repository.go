package postgres

import (
	"context"

	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/domain/repository"
	"restaurant/internal/errors"
	"restaurant/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements repository.OrderRepository. Writes go through the
// transaction-bound *gorm.DB handed out by the transaction manager.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a GORM-backed OrderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Save inserts the order row and its item rows in one GORM create with associations.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrOrderCreationFailed.WrapMessage("waiter does not exist")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return nil, domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save order")
	}

	return toOrderDomain(orderM)
}

// FindByID retrieves an order with its items in insertion order.
func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

// FindByDateRange lists the orders created inside the window, oldest first.
func (repo *orderRepository) FindByDateRange(ctx context.Context, window entity.DateTimeRange) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Where("created_at BETWEEN ? AND ?", window.Start(), window.End()).
		Order("created_at ASC, id ASC").
		Find(&orderMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by date range")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		order, err := toOrderDomain(&orderMs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// GetProductSalesReport aggregates item rows by literal product name in the database.
// Ties on quantity are broken by product name so the output is deterministic.
func (repo *orderRepository) GetProductSalesReport(ctx context.Context, window entity.DateTimeRange) ([]entity.SalesReportRow, error) {
	var rows []model.SalesReportRowModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("order_items").
		Select("order_items.product_name AS product_name, "+
			"SUM(order_items.quantity) AS total_quantity, "+
			"SUM(order_items.unit_price * order_items.quantity) AS total_price").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at BETWEEN ? AND ?", window.Start(), window.End()).
		Group("order_items.product_name").
		Order("total_quantity DESC, product_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to build product sales report")
	}

	report := make([]entity.SalesReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, entity.SalesReportRow{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalPrice:    row.TotalPrice,
		})
	}

	return report, nil
}

// --- Mapper Functions ---

func fromOrderDomain(order *entity.Order) *model.OrderModel {
	items := order.Items()
	itemMs := make([]model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemMs = append(itemMs, model.OrderItemModel{
			ID:          item.ID(),
			OrderID:     order.ID(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Amount(),
			Currency:    item.UnitPrice().Currency(),
			Quantity:    item.Quantity(),
		})
	}

	return &model.OrderModel{
		ID:           order.ID(),
		CustomerName: order.CustomerName(),
		WaiterID:     order.WaiterID(),
		Items:        itemMs,
		CreatedAt:    order.CreatedAt(),
	}
}

func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		price, err := entity.NewMoney(itemM.UnitPrice, itemM.Currency)
		if err != nil {
			return nil, errors.Wrapf(err, "order item %d has an invalid stored price", itemM.ID)
		}

		item, err := entity.RestoreOrderItem(itemM.ID, itemM.ProductName, price, itemM.Quantity)
		if err != nil {
			return nil, errors.Wrapf(err, "order item %d is invalid", itemM.ID)
		}
		items = append(items, item)
	}

	order, err := entity.RestoreOrder(data.ID, data.CustomerName, items, data.WaiterID, data.CreatedAt.UTC())
	if err != nil {
		return nil, errors.Wrapf(err, "order %d is invalid", data.ID)
	}

	return order, nil
}
