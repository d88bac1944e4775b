// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"restaurant/internal/delivery/api/middleware"
	"restaurant/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public routes
	apiV1.POST("/login", r.userHandler.Login)
	apiV1.POST("/users", r.userHandler.CreateUser)
	apiV1.GET("/users/:email", r.userHandler.GetUserByEmail)

	productsGroup := apiV1.Group("/products", r.authMiddleware.Authenticate)
	{
		productsGroup.GET("", r.productHandler.GetAllProducts)
		productsGroup.POST("", r.productHandler.CreateOrUpdateProduct)
	}

	ordersGroup := apiV1.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/report", r.orderHandler.GetSalesReport)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}
}
