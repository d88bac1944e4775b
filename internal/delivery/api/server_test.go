package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant/config"
	"restaurant/internal/delivery/api/middleware"
	"restaurant/internal/delivery/api/router"
	"restaurant/internal/delivery/api/router/handler"
	deliverycontext "restaurant/internal/delivery/context"
	"restaurant/internal/domain/entity"
	domainerrors "restaurant/internal/domain/errors"
	"restaurant/internal/errors"
	mockUsecase "restaurant/internal/mocks/usecase"
	"restaurant/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixture struct {
	echo      *echo.Echo
	userUC    *mockUsecase.MockUserUsecase
	productUC *mockUsecase.MockProductUsecase
	orderUC   *mockUsecase.MockOrderUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	logger := slog.New(slog.DiscardHandler)

	f := &apiFixture{
		userUC:    mockUsecase.NewMockUserUsecase(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
		orderUC:   mockUsecase.NewMockOrderUsecase(t),
	}

	f.echo = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, Logger: logger}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.productUC}),
		OrderHandler:   handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.orderUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{UserUC: f.userUC, Logger: logger}),
	}).RegisterRoutes(f.echo)

	return f
}

func (f *apiFixture) expectAuthenticated() {
	f.userUC.EXPECT().Authenticate(mock.Anything, testToken).
		Return(&entity.User{ID: 1, Email: "waiter@email.com", Name: "Ana"}, nil)
}

func (f *apiFixture) do(t *testing.T, method, target, body string, authorized bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func mustOrder(t *testing.T) *entity.Order {
	t.Helper()

	price, err := entity.NewMoneyFromString("10.00", "MXN")
	require.NoError(t, err)
	pizza, err := entity.RestoreOrderItem(1, "Pizza", price, 5)
	require.NoError(t, err)
	price, err = entity.NewMoneyFromString("15", "MXN")
	require.NoError(t, err)
	quesadilla, err := entity.RestoreOrderItem(2, "Quesadilla", price, 1)
	require.NoError(t, err)

	order, err := entity.RestoreOrder(7, "Cust", []entity.OrderItem{pizza, quesadilla}, 1,
		time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return order
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestUnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/nope", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/products", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_AUTHENTICATED", env.Error.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().Authenticate(mock.Anything, testToken).Return(nil, domainerrors.ErrInvalidToken)

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders", "", true)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	assert.Equal(t, "Could not validate credentials", env.Error.Message)
}

func TestLogin(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "admin@email.com", Password: "secret-pw"}).
		Return(&usecase.LoginOutput{
			AccessToken: "jwt",
			TokenType:   "bearer",
			ExpiresIn:   86400,
			User:        &entity.User{ID: 1, Email: "admin@email.com", Name: "Admin"},
		}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/login", `{"email":"admin@email.com","password":"secret-pw"}`, false)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "jwt", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "admin@email.com", resp.User.Email)
}

func TestLogin_ValidationFailed(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/login", `{"email":"nope"}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ValidationErrorCode, env.Error.Code)
	assert.JSONEq(t, `[{"field":"email","rule":"email"},{"field":"password","rule":"required"}]`, string(env.Error.Details))
}

func TestCreateUser_Conflict(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().CreateUser(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUserAlreadyExists.WithMessage("Email ana@email.com is already registered"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/users", `{"email":"ana@email.com","name":"Ana","password":"12345678"}`, false)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	assert.Equal(t, "Email ana@email.com is already registered", env.Error.Message)
}

func TestGetUserByEmail(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().GetUserByEmail(mock.Anything, "ana@email.com").
		Return(&entity.User{ID: 3, Email: "ana@email.com", Name: "Ana", PasswordHash: "hash"}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/users/ana@email.com", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "hash")

	var resp handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(3), resp.ID)
}

func TestCreateOrUpdateProduct(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()

	price, err := entity.NewMoneyFromString("120.5", "MXN")
	require.NoError(t, err)
	product, err := entity.NewProduct("Margherita", price)
	require.NoError(t, err)

	f.productUC.EXPECT().CreateOrUpdateProduct(mock.Anything, usecase.UpsertProductInput{Name: "Margherita", Price: "120.5"}).
		Return(product, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/products", `{"name":"Margherita","price":120.50}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp handler.ProductResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "120.50", resp.CurrentPrice)
	assert.Equal(t, "MXN", resp.Currency)
}

func TestCreateOrder(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()

	body := `{"customer_name":"Cust","items":[
		{"product_name":"Pizza","unit_price":10.00,"quantity":2},
		{"product_name":"Pizza","unit_price":"10.00","quantity":3},
		{"product_name":"Quesadilla","unit_price":15,"quantity":1}]}`

	f.orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, "waiter@email.com").
		RunAndReturn(func(ctx context.Context, input usecase.CreateOrderInput, _ string) (*entity.Order, error) {
			waiter, ok := deliverycontext.GetWaiter(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(1), waiter.ID)

			assert.Equal(t, "Cust", input.CustomerName)
			require.Len(t, input.Items, 3)
			assert.True(t, decimal.RequireFromString(input.Items[1].UnitPrice).Equal(decimal.NewFromInt(10)))
			assert.Equal(t, 3, input.Items[1].Quantity)

			return mustOrder(t), nil
		})

	rec, env := f.do(t, http.MethodPost, "/api/v1/orders", body, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp handler.OrderResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "65.00", resp.TotalPrice)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "10.00", resp.Items[0].UnitPrice)
	assert.Equal(t, "50.00", resp.Items[0].TotalPrice)
}

func TestCreateOrder_DomainValidation(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()
	f.orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, "waiter@email.com").
		Return(nil, domainerrors.NewValidationError("quantity", "Quantity must be greater than 0"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/orders",
		`{"customer_name":"Cust","items":[{"product_name":"Pizza","unit_price":"10","quantity":0}]}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ValidationErrorCode, env.Error.Code)
	assert.Equal(t, "Quantity must be greater than 0", env.Error.Message)
	assert.JSONEq(t, `[{"field":"quantity"}]`, string(env.Error.Details))
}

func TestCreateOrder_InternalError(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()
	f.orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	rec, env := f.do(t, http.MethodPost, "/api/v1/orders",
		`{"customer_name":"Cust","items":[{"product_name":"Pizza","unit_price":"10","quantity":1}]}`, true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestGetOrder(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()
	f.orderUC.EXPECT().GetOrder(mock.Anything, int64(7)).Return(mustOrder(t), nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders/7", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.OrderResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Cust", resp.CustomerName)
}

func TestGetOrder_NotFoundAndBadID(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()
	f.orderUC.EXPECT().GetOrder(mock.Anything, int64(99)).Return(nil, domainerrors.ErrOrderNotFound)

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders/99", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)

	rec, env = f.do(t, http.MethodGet, "/api/v1/orders/abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"field":"id"}]`, string(env.Error.Details))
}

func TestGetSalesReport(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()

	wantWindow := usecase.DateRangeInput{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
	}
	f.orderUC.EXPECT().GetSalesReport(mock.Anything, wantWindow).Return([]entity.SalesReportRow{
		{ProductName: "Tacos", TotalQuantity: 3, TotalPrice: decimal.RequireFromString("45")},
		{ProductName: "Soda", TotalQuantity: 1, TotalPrice: decimal.RequireFromString("2.5")},
	}, nil)

	rec, env := f.do(t, http.MethodGet,
		"/api/v1/orders/report?start_date=2024-03-01T00:00:00Z&end_date=2024-03-31T23:59:59Z", "", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[
		{"product_name":"Tacos","total_quantity":3,"total_price":"45.00"},
		{"product_name":"Soda","total_quantity":1,"total_price":"2.50"}]`, string(env.Data))
}

func TestGetSalesReport_InvalidDate(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders/report?start_date=yesterday", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Invalid datetime format", env.Error.Message)
	assert.JSONEq(t, `[{"field":"start_date"}]`, string(env.Error.Details))
}

func TestListOrders_DefaultWindow(t *testing.T) {
	f := newAPIFixture(t)
	f.expectAuthenticated()
	f.orderUC.EXPECT().ListOrders(mock.Anything, usecase.DateRangeInput{}).Return(nil, nil)

	rec, env := f.do(t, http.MethodGet, "/api/v1/orders", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}
