package handler

import (
	"time"

	"restaurant/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Amounts leave the API as fixed two-decimal strings.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(entity.MoneyScale)
}

// UserResponse is the public view of a waiter account.
type UserResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// ProductResponse is a catalog entry.
type ProductResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CurrentPrice string    `json:"current_price"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CurrentPrice: formatAmount(p.CurrentPrice.Amount()),
		Currency:     p.CurrentPrice.Currency(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// OrderItemResponse is one merged line of an order.
type OrderItemResponse struct {
	ID          int64  `json:"id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	TotalPrice  string `json:"total_price"`
}

// OrderResponse is a stored order with its computed total.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerName string              `json:"customer_name"`
	WaiterID     int64               `json:"waiter_id"`
	CreatedAt    time.Time           `json:"created_at"`
	Items        []OrderItemResponse `json:"items"`
	TotalPrice   string              `json:"total_price"`
	Currency     string              `json:"currency"`
}

func toOrderResponse(o *entity.Order) (OrderResponse, error) {
	total, err := o.TotalPrice()
	if err != nil {
		return OrderResponse{}, err
	}

	items := o.Items()
	resp := OrderResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		WaiterID:     o.WaiterID(),
		CreatedAt:    o.CreatedAt(),
		Items:        make([]OrderItemResponse, 0, len(items)),
		TotalPrice:   formatAmount(total.Amount()),
		Currency:     total.Currency(),
	}

	for _, item := range items {
		lineTotal, err := item.TotalPrice()
		if err != nil {
			return OrderResponse{}, err
		}
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          item.ID(),
			ProductName: item.ProductName(),
			UnitPrice:   formatAmount(item.UnitPrice().Amount()),
			Quantity:    item.Quantity(),
			TotalPrice:  formatAmount(lineTotal.Amount()),
		})
	}

	return resp, nil
}

// SalesReportRowResponse is one product line of the sales report.
type SalesReportRowResponse struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
	TotalPrice    string `json:"total_price"`
}

func toSalesReportResponse(rows []entity.SalesReportRow) []SalesReportRowResponse {
	resp := make([]SalesReportRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, SalesReportRowResponse{
			ProductName:   row.ProductName,
			TotalQuantity: row.TotalQuantity,
			TotalPrice:    formatAmount(row.TotalPrice),
		})
	}

	return resp
}
