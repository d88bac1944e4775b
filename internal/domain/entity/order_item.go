package entity

import (
	"strings"

	domainerrors "restaurant/internal/domain/errors"
)

const minNameLength = 2

// OrderItem is a single product line of an order. It is immutable; combining two
// lines for the same product yields a new OrderItem.
type OrderItem struct {
	id          int64 // zero until persisted
	productName string
	unitPrice   Money
	quantity    int
}

// NewOrderItem builds a line that has not been persisted yet.
func NewOrderItem(productName string, unitPrice Money, quantity int) (OrderItem, error) {
	return RestoreOrderItem(0, productName, unitPrice, quantity)
}

// RestoreOrderItem rebuilds a line from stored values. Stored rows bypass request
// validation, so the same rules run again here.
func RestoreOrderItem(id int64, productName string, unitPrice Money, quantity int) (OrderItem, error) {
	if len(strings.TrimSpace(productName)) < minNameLength {
		return OrderItem{}, domainerrors.NewValidationError("product_name", "Product name must be at least 2 characters long")
	}
	if quantity <= 0 {
		return OrderItem{}, domainerrors.NewValidationError("quantity", "Quantity must be greater than 0")
	}
	if !unitPrice.Amount().IsPositive() {
		return OrderItem{}, domainerrors.NewValidationError("unit_price", "Unit price must be greater than 0")
	}

	return OrderItem{
		id:          id,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

// ID returns the persisted identifier, or zero.
func (i OrderItem) ID() int64 {
	return i.id
}

// ProductName returns the product name exactly as entered.
func (i OrderItem) ProductName() string {
	return i.productName
}

// UnitPrice returns the price of one unit.
func (i OrderItem) UnitPrice() Money {
	return i.unitPrice
}

// Quantity returns the number of units.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// TotalPrice returns UnitPrice * Quantity.
func (i OrderItem) TotalPrice() (Money, error) {
	return i.unitPrice.Multiply(i.quantity)
}

// combine returns a line with both quantities summed. The receiver's id and
// unit price are kept.
func (i OrderItem) combine(other OrderItem) OrderItem {
	return OrderItem{
		id:          i.id,
		productName: i.productName,
		unitPrice:   i.unitPrice,
		quantity:    i.quantity + other.quantity,
	}
}
