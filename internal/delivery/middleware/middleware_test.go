package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant/config"
	deliverycontext "restaurant/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesValidHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxID string
	h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})

	require.NoError(t, h(c))
	assert.Equal(t, "abc-123", ctxID)
	assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesInvalidHeader(t *testing.T) {
	for _, id := range []string{"", "has space", "line\nbreak", strings.Repeat("x", maxRequestIDLength+1)} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(echo.Context) error { return nil })
		require.NoError(t, h(c))

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.NotEqual(t, id, got)
		assert.Len(t, got, 36)
	}
}

func TestLoggerMiddleware_LogsFinalStatusWithRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/missing?x=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := &config.Config{}
	cfg.Env.Debug = true
	h := NewRequestIDMiddleware(logger).Process(
		NewLoggerMiddleware(slog.New(slog.DiscardHandler), cfg).Handle(func(echo.Context) error {
			return echo.ErrNotFound
		}),
	)

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP Request"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"request_id"`)
	assert.Contains(t, out, `"query":"x=1"`)
}
