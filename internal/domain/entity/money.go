package entity

import (
	domainerrors "restaurant/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the home currency used when no currency code is given.
const DefaultCurrency = "MXN"

// MoneyScale is the number of decimal places amounts are stored and rendered with.
const MoneyScale = 2

// maxStoredAmount is the exclusive upper bound of a NUMERIC(10,2) column.
var maxStoredAmount = decimal.New(1, 10-MoneyScale)

// Money is an immutable, strictly positive monetary amount tagged with a currency code.
// Amounts use exact decimal arithmetic.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney builds a Money value. An empty currency selects DefaultCurrency.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, domainerrors.NewValidationError("amount", "Amount must be greater than 0")
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyFromString parses an exact decimal string such as "12.50".
func NewMoneyFromString(amount string, currency string) (Money, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, domainerrors.NewValidationError("amount", "Invalid amount format")
	}

	return NewMoney(parsed, currency)
}

// CheckStorable rejects amounts the fixed-scale money columns would round or
// overflow, so a stored value always reads back unchanged.
func CheckStorable(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return domainerrors.NewValidationError(field, "Amount must have at most 2 decimal places")
	}
	if amount.Abs().Cmp(maxStoredAmount) >= 0 {
		return domainerrors.NewValidationError(field, "Amount must be less than 100000000")
	}

	return nil
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, domainerrors.NewValidationError("currency", "Cannot add different currencies")
	}

	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Multiply returns the amount scaled by quantity. A non-positive quantity would
// produce an amount Money cannot hold, so it is rejected.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, domainerrors.NewValidationError("quantity", "Quantity must be greater than 0")
	}

	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), currency: m.currency}, nil
}

// Equal reports whether both values hold the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether m is the zero value, i.e. was never constructed.
func (m Money) IsZero() bool {
	return m.currency == "" && m.amount.IsZero()
}

// String renders the amount at MoneyScale followed by the currency, e.g. "12.50 MXN".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale) + " " + m.currency
}
