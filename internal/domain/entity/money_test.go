package entity

import (
	"testing"

	domainerrors "restaurant/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount, currency string) Money {
	t.Helper()

	m, err := NewMoneyFromString(amount, currency)
	require.NoError(t, err)

	return m
}

func TestNewMoney_RejectsNonPositiveAmounts(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-0.01", "-10"} {
		t.Run(amount, func(t *testing.T) {
			m, err := NewMoney(decimal.RequireFromString(amount), "")
			require.Error(t, err)
			assert.True(t, domainerrors.IsValidationError(err))
			assert.True(t, m.IsZero())
		})
	}
}

func TestNewMoney_RoundTripsPositiveAmounts(t *testing.T) {
	for _, amount := range []string{"0.01", "1", "10.50", "12345678.99", "0.333"} {
		t.Run(amount, func(t *testing.T) {
			want := decimal.RequireFromString(amount)

			m, err := NewMoney(want, "")
			require.NoError(t, err)
			assert.True(t, m.Amount().Equal(want))
			assert.Equal(t, DefaultCurrency, m.Currency())
		})
	}
}

func TestNewMoneyFromString_InvalidFormat(t *testing.T) {
	_, err := NewMoneyFromString("ten", "MXN")
	require.Error(t, err)
	assert.Equal(t, "Invalid amount format", err.Error())
}

func TestMoney_Add(t *testing.T) {
	sum, err := mustMoney(t, "10.25", "MXN").Add(mustMoney(t, "5.75", "MXN"))
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.RequireFromString("16")))
	assert.Equal(t, "MXN", sum.Currency())
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	_, err := mustMoney(t, "10", "MXN").Add(mustMoney(t, "5", "USD"))
	require.Error(t, err)
	assert.True(t, domainerrors.IsValidationError(err))
	assert.Equal(t, "Cannot add different currencies", err.Error())
}

func TestMoney_Add_IsExact(t *testing.T) {
	sum, err := mustMoney(t, "0.1", "").Add(mustMoney(t, "0.2", ""))
	require.NoError(t, err)
	assert.Equal(t, "0.30", sum.Amount().StringFixed(MoneyScale))
	assert.True(t, sum.Amount().Equal(decimal.RequireFromString("0.3")))
}

func TestMoney_Multiply(t *testing.T) {
	m := mustMoney(t, "12.50", "")

	product, err := m.Multiply(3)
	require.NoError(t, err)
	assert.True(t, product.Amount().Equal(decimal.RequireFromString("37.5")))
	assert.Equal(t, m.Currency(), product.Currency())

	_, err = m.Multiply(0)
	assert.Error(t, err)
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "7.00 MXN", mustMoney(t, "7", "").String())
	assert.Equal(t, "0.50 USD", mustMoney(t, "0.5", "USD").String())
}

func TestMoney_Equal(t *testing.T) {
	assert.True(t, mustMoney(t, "10", "MXN").Equal(mustMoney(t, "10.00", "MXN")))
	assert.False(t, mustMoney(t, "10", "MXN").Equal(mustMoney(t, "10", "USD")))
}

func TestCheckStorable(t *testing.T) {
	tests := []struct {
		amount  string
		wantErr string
	}{
		{amount: "10.01"},
		{amount: "10.0100"},
		{amount: "99999999.99"},
		{amount: "10.005", wantErr: "Amount must have at most 2 decimal places"},
		{amount: "0.001", wantErr: "Amount must have at most 2 decimal places"},
		{amount: "100000000", wantErr: "Amount must be less than 100000000"},
		{amount: "1e9", wantErr: "Amount must be less than 100000000"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := CheckStorable("unit_price", decimal.RequireFromString(tt.amount))
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			vErr, ok := domainerrors.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, "unit_price", vErr.Field())
			assert.Equal(t, tt.wantErr, vErr.Message())
		})
	}
}
