package impl

import (
	"io"
	"log/slog"
	"testing"

	"restaurant/config"
	"restaurant/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:  &config.AuthConfig{BcryptCost: 4},
		Order: &config.OrderConfig{Currency: "MXN", ReportDefaultDays: 30},
	}
}

func mustMoney(t *testing.T, amount string) entity.Money {
	t.Helper()

	m, err := entity.NewMoneyFromString(amount, "MXN")
	require.NoError(t, err)

	return m
}
