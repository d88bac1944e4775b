package entity

import "github.com/shopspring/decimal"

// SalesReportRow summarises the sales of one product over a date window.
// Rows are query results and carry no identity.
type SalesReportRow struct {
	ProductName   string
	TotalQuantity int64
	TotalPrice    decimal.Decimal
}
