package entity

import (
	"strings"
	"time"

	domainerrors "restaurant/internal/domain/errors"
)

// Order is the aggregate root owning a customer's line items. It is built once,
// fully validated, and exposes no mutators.
type Order struct {
	id           int64 // zero until persisted
	customerName string
	items        []OrderItem
	waiterID     int64 // references a User, not owned
	createdAt    time.Time
}

// NewOrder creates an order stamped with the current UTC time.
// Rules are checked in order: customer name, at least one item after merging
// duplicates, waiter id. The first broken rule is reported.
func NewOrder(customerName string, items []OrderItem, waiterID int64) (*Order, error) {
	return buildOrder(0, customerName, items, waiterID, time.Now().UTC())
}

// RestoreOrder rebuilds a persisted order through the same rules as NewOrder.
func RestoreOrder(id int64, customerName string, items []OrderItem, waiterID int64, createdAt time.Time) (*Order, error) {
	return buildOrder(id, customerName, items, waiterID, createdAt.UTC())
}

func buildOrder(id int64, customerName string, items []OrderItem, waiterID int64, createdAt time.Time) (*Order, error) {
	if len(strings.TrimSpace(customerName)) < minNameLength {
		return nil, domainerrors.NewValidationError("customer_name", "Customer name must be at least 2 characters long")
	}

	merged := combineDuplicateItems(items)
	if len(merged) == 0 {
		return nil, domainerrors.NewValidationError("items", "Order must have at least one item")
	}

	if waiterID < 1 {
		return nil, domainerrors.NewValidationError("waiter_id", "Invalid waiter id")
	}

	return &Order{
		id:           id,
		customerName: customerName,
		items:        merged,
		waiterID:     waiterID,
		createdAt:    createdAt,
	}, nil
}

// combineDuplicateItems folds lines sharing a product name into one line with the
// summed quantity. The first occurrence decides the line's id, unit price and
// position; later prices for the same name are dropped.
func combineDuplicateItems(items []OrderItem) []OrderItem {
	merged := make([]OrderItem, 0, len(items))
	position := make(map[string]int, len(items))

	for _, item := range items {
		idx, seen := position[item.productName]
		if !seen {
			position[item.productName] = len(merged)
			merged = append(merged, item)

			continue
		}
		merged[idx] = merged[idx].combine(item)
	}

	return merged
}

// ID returns the persisted identifier, or zero.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerName returns the customer name as entered.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the merged line items in first-occurrence order.
func (o *Order) Items() []OrderItem {
	items := make([]OrderItem, len(o.items))
	copy(items, o.items)

	return items
}

// WaiterID returns the id of the waiter who took the order.
func (o *Order) WaiterID() int64 {
	return o.waiterID
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalPrice sums every line total. It fails if lines carry different currencies.
func (o *Order) TotalPrice() (Money, error) {
	var total Money
	for i, item := range o.items {
		lineTotal, err := item.TotalPrice()
		if err != nil {
			return Money{}, err
		}
		if i == 0 {
			total = lineTotal

			continue
		}
		if total, err = total.Add(lineTotal); err != nil {
			return Money{}, err
		}
	}

	return total, nil
}
