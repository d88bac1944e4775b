// Package middleware holds the Echo middleware specific to the restaurant API.
package middleware

import (
	"log/slog"
	"strings"

	"restaurant/internal/delivery/api/response"
	deliverycontext "restaurant/internal/delivery/context"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/errors"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "Bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthMiddleware resolves bearer tokens to the waiter making the request.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Authenticate rejects requests without a valid access token. On success the
// waiter is stored in the request context and the request logger is tagged
// with the waiter ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, bearerScheme)

			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Not authenticated")
		}

		ctx := c.Request().Context()
		user, err := m.userUC.Authenticate(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrInvalidToken) {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, bearerScheme)
			}

			return response.HandleAppError(c, err)
		}

		waiter := deliverycontext.Waiter{ID: user.ID, Email: user.Email}
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Int64("waiter_id", user.ID))

		ctx = deliverycontext.WithWaiter(ctx, waiter)
		ctx = deliverycontext.WithLogger(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Set(string(deliverycontext.KeyWaiter), waiter)

		return next(c)
	}
}

// GetWaiter returns the waiter stored by Authenticate.
func GetWaiter(c echo.Context) (deliverycontext.Waiter, bool) {
	return deliverycontext.GetWaiter(c.Request().Context())
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
