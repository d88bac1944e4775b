package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Items are stored in 'order_items'
// and removed together with their order.
type OrderModel struct {
	ID           int64            `gorm:"primaryKey;autoIncrement"`
	CustomerName string           `gorm:"type:varchar(100);not null"`
	WaiterID     int64            `gorm:"not null;index"`
	Waiter       *UserModel       `gorm:"foreignKey:WaiterID"`
	Items        []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. The product is referenced by
// name; unit_price is the price agreed when the order was taken.
type OrderItemModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	ProductName string          `gorm:"type:varchar(100);not null;index"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Quantity    int             `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// SalesReportRowModel receives one aggregated row of the product sales report.
type SalesReportRowModel struct {
	ProductName   string
	TotalQuantity int64
	TotalPrice    decimal.Decimal
}
