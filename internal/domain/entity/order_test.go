package entity

import (
	"testing"
	"time"

	domainerrors "restaurant/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name, price string, quantity int) OrderItem {
	t.Helper()

	item, err := NewOrderItem(name, mustMoney(t, price, ""), quantity)
	require.NoError(t, err)

	return item
}

func TestNewOrderItem_Validation(t *testing.T) {
	price := mustMoney(t, "10.00", "")

	tests := []struct {
		name        string
		productName string
		unitPrice   Money
		quantity    int
		wantField   string
		wantMessage string
	}{
		{
			name:        "short product name",
			productName: " P ",
			unitPrice:   price,
			quantity:    1,
			wantField:   "product_name",
			wantMessage: "Product name must be at least 2 characters long",
		},
		{
			name:        "zero quantity",
			productName: "Pizza",
			unitPrice:   price,
			quantity:    0,
			wantField:   "quantity",
			wantMessage: "Quantity must be greater than 0",
		},
		{
			name:        "negative quantity",
			productName: "Pizza",
			unitPrice:   price,
			quantity:    -2,
			wantField:   "quantity",
			wantMessage: "Quantity must be greater than 0",
		},
		{
			name:        "unset unit price",
			productName: "Pizza",
			unitPrice:   Money{},
			quantity:    1,
			wantField:   "unit_price",
			wantMessage: "Unit price must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOrderItem(tt.productName, tt.unitPrice, tt.quantity)
			require.Error(t, err)

			var vErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field())
			assert.Equal(t, tt.wantMessage, vErr.Message())
		})
	}
}

func TestOrderItem_TotalPrice(t *testing.T) {
	item := mustItem(t, "Tacos", "15.50", 4)

	total, err := item.TotalPrice()
	require.NoError(t, err)
	assert.Equal(t, "62.00", total.Amount().StringFixed(MoneyScale))
}

func TestNewOrder_MergesDuplicateItems(t *testing.T) {
	items := []OrderItem{
		mustItem(t, "Pizza", "10.00", 2),
		mustItem(t, "Pizza", "10.00", 3),
		mustItem(t, "Quesadilla", "15.00", 1),
	}

	order, err := NewOrder("Cust", items, 1)
	require.NoError(t, err)

	merged := order.Items()
	require.Len(t, merged, 2)
	assert.Equal(t, "Pizza", merged[0].ProductName())
	assert.Equal(t, 5, merged[0].Quantity())
	assert.True(t, merged[0].UnitPrice().Amount().Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "Quesadilla", merged[1].ProductName())

	total, err := order.TotalPrice()
	require.NoError(t, err)
	assert.True(t, total.Amount().Equal(decimal.RequireFromString("65.00")))
}

func TestNewOrder_MergeKeepsFirstPrice(t *testing.T) {
	order, err := NewOrder("Cust", []OrderItem{
		mustItem(t, "Pizza", "10.00", 1),
		mustItem(t, "Pizza", "20.00", 1),
	}, 1)
	require.NoError(t, err)

	items := order.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity())
	assert.Equal(t, "10.00", items[0].UnitPrice().Amount().StringFixed(MoneyScale))
}

func TestNewOrder_MergeKeepsFirstOccurrenceOrder(t *testing.T) {
	order, err := NewOrder("Cust", []OrderItem{
		mustItem(t, "Soda", "2.00", 1),
		mustItem(t, "Burger", "8.00", 1),
		mustItem(t, "Soda", "2.00", 2),
		mustItem(t, "Fries", "3.00", 1),
		mustItem(t, "Burger", "8.00", 1),
	}, 3)
	require.NoError(t, err)

	var names []string
	for _, item := range order.Items() {
		names = append(names, item.ProductName())
	}
	assert.Equal(t, []string{"Soda", "Burger", "Fries"}, names)
}

func TestNewOrder_MergeKeepsFirstID(t *testing.T) {
	price := mustMoney(t, "5.00", "")
	first, err := RestoreOrderItem(11, "Coffee", price, 1)
	require.NoError(t, err)
	second, err := RestoreOrderItem(12, "Coffee", price, 1)
	require.NoError(t, err)

	order, err := RestoreOrder(7, "Cust", []OrderItem{first, second}, 1, time.Now())
	require.NoError(t, err)

	items := order.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(11), items[0].ID())
	assert.Equal(t, int64(7), order.ID())
}

func TestNewOrder_ValidationOrdering(t *testing.T) {
	valid := []OrderItem{mustItem(t, "Pizza", "10.00", 1)}

	tests := []struct {
		name         string
		customerName string
		items        []OrderItem
		waiterID     int64
		wantMessage  string
	}{
		{
			name:         "customer name reported before empty items",
			customerName: "",
			items:        nil,
			waiterID:     1,
			wantMessage:  "Customer name must be at least 2 characters long",
		},
		{
			name:         "customer name reported before waiter id",
			customerName: " a ",
			items:        valid,
			waiterID:     0,
			wantMessage:  "Customer name must be at least 2 characters long",
		},
		{
			name:         "empty items reported before waiter id",
			customerName: "Valid Name",
			items:        []OrderItem{},
			waiterID:     0,
			wantMessage:  "Order must have at least one item",
		},
		{
			name:         "invalid waiter id",
			customerName: "Valid Name",
			items:        valid,
			waiterID:     0,
			wantMessage:  "Invalid waiter id",
		},
		{
			name:         "negative waiter id",
			customerName: "Valid Name",
			items:        valid,
			waiterID:     -5,
			wantMessage:  "Invalid waiter id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(tt.customerName, tt.items, tt.waiterID)
			require.Error(t, err)
			assert.Nil(t, order)
			assert.True(t, domainerrors.IsValidationError(err))
			assert.Equal(t, tt.wantMessage, err.Error())
		})
	}
}

func TestNewOrder_StampsCreatedAt(t *testing.T) {
	before := time.Now().UTC()
	order, err := NewOrder("Cust", []OrderItem{mustItem(t, "Pizza", "10.00", 1)}, 1)
	after := time.Now().UTC()
	require.NoError(t, err)

	assert.Equal(t, time.UTC, order.CreatedAt().Location())
	assert.False(t, order.CreatedAt().Before(before))
	assert.False(t, order.CreatedAt().After(after))
	assert.Zero(t, order.ID())
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	order, err := NewOrder("Cust", []OrderItem{mustItem(t, "Pizza", "10.00", 1)}, 1)
	require.NoError(t, err)

	items := order.Items()
	items[0] = mustItem(t, "Other", "99.00", 9)

	assert.Equal(t, "Pizza", order.Items()[0].ProductName())
}

func TestOrder_TotalPrice_CurrencyMismatch(t *testing.T) {
	mxn, err := NewOrderItem("Pizza", mustMoney(t, "10", "MXN"), 1)
	require.NoError(t, err)
	usd, err := NewOrderItem("Soda", mustMoney(t, "2", "USD"), 1)
	require.NoError(t, err)

	order, err := NewOrder("Cust", []OrderItem{mxn, usd}, 1)
	require.NoError(t, err)

	_, err = order.TotalPrice()
	assert.Error(t, err)
}
