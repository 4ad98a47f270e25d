// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rocktea/internal/delivery/http/middleware"
	"rocktea/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	WebhookHandler  *handler.WebhookHandler
	PaymentHandler  *handler.PaymentHandler
	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	WalletHandler   *handler.WalletHandler
	StoreHandler    *handler.StoreHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	webhookHandler  *handler.WebhookHandler
	paymentHandler  *handler.PaymentHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	walletHandler   *handler.WalletHandler
	storeHandler    *handler.StoreHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		webhookHandler:  params.WebhookHandler,
		paymentHandler:  params.PaymentHandler,
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		walletHandler:   params.WalletHandler,
		storeHandler:    params.StoreHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Provider callbacks are authenticated by signature, not JWT.
	e.POST("/webhook/paystack", r.webhookHandler.HandlePaystack)

	// Payment initiation requires a logged-in payer.
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("/initiate", r.paymentHandler.InitiatePayment)
	}

	// Cart and checkout routes require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("/rates", r.checkoutHandler.GetRates)
		checkoutGroup.POST("/reserve", r.checkoutHandler.ReserveShipment)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("/by-reference", r.orderHandler.GetByReference)
		orderGroup.POST("/confirm-delivery", r.orderHandler.ConfirmDelivery)
	}

	// Merchant routes require authentication and the "merchant" role
	walletGroup := e.Group("/wallet")
	walletGroup.Use(r.authMiddleware.Authenticate)
	walletGroup.Use(r.authMiddleware.RequireRole("merchant"))
	{
		walletGroup.POST("/payout", r.walletHandler.RequestPayout)
		walletGroup.GET("/history", r.walletHandler.GetHistory)
	}

	storeGroup := e.Group("/stores")
	storeGroup.Use(r.authMiddleware.Authenticate)
	storeGroup.Use(r.authMiddleware.RequireRole("merchant"))
	{
		storeGroup.POST("", r.storeHandler.CreateStore)
		storeGroup.POST("/:id/provision", r.storeHandler.ProvisionDomain)
		storeGroup.DELETE("", r.storeHandler.DeleteStore)
	}
}
