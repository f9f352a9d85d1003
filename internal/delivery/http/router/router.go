// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"encontro/internal/delivery/http/middleware"
	"encontro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	OrderHandler          *handler.OrderHandler
	PaymentHandler        *handler.PaymentHandler
	ReservationHandler    *handler.ReservationHandler
	StatusHandler         *handler.StatusHandler
	AdminAuthHandler      *handler.AdminAuthHandler
	AdminDashboardHandler *handler.AdminDashboardHandler
	AuthMiddleware        *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler           *handler.AuthHandler
	orderHandler          *handler.OrderHandler
	paymentHandler        *handler.PaymentHandler
	reservationHandler    *handler.ReservationHandler
	statusHandler         *handler.StatusHandler
	adminAuthHandler      *handler.AdminAuthHandler
	adminDashboardHandler *handler.AdminDashboardHandler
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:           params.AuthHandler,
		orderHandler:          params.OrderHandler,
		paymentHandler:        params.PaymentHandler,
		reservationHandler:    params.ReservationHandler,
		statusHandler:         params.StatusHandler,
		adminAuthHandler:      params.AdminAuthHandler,
		adminDashboardHandler: params.AdminDashboardHandler,
		authMiddleware:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/cadastro", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verify-token", r.authHandler.VerifyToken)
	}
	api.GET("/status", r.statusHandler.Status)
	api.GET("/status/preco/:idade", r.statusHandler.PriceForAge)

	// Participant routes that require a user token
	userGroup := api.Group("", r.authMiddleware.AuthenticateUser)
	{
		userGroup.GET("/status/compra", r.statusHandler.PurchaseStatus)

		userGroup.POST("/pedidos", r.orderHandler.Create)
		userGroup.GET("/pedidos", r.orderHandler.List)
		userGroup.GET("/pedidos/:id", r.orderHandler.Get)
		userGroup.POST("/pedidos/:id/cancelar", r.orderHandler.Cancel)

		userGroup.POST("/pagamentos", r.paymentHandler.Create)
		userGroup.GET("/pagamentos", r.paymentHandler.List)
		userGroup.POST("/pagamentos/:id/comprovante", r.paymentHandler.UploadReceipt)
		userGroup.GET("/pagamentos/:id/qrcode", r.paymentHandler.QRCode)

		userGroup.GET("/mesas", r.reservationHandler.ListTables)
		userGroup.POST("/reservas", r.reservationHandler.Create)
		userGroup.GET("/reservas", r.reservationHandler.List)
		userGroup.GET("/reservas/minha", r.reservationHandler.Mine)
		userGroup.POST("/reservas/:id/cancelar", r.reservationHandler.Cancel)
	}

	// Administrator routes
	adminGroup := api.Group("/admin")
	{
		adminGroup.POST("/login", r.adminAuthHandler.Login)
		adminGroup.POST("/verify-token", r.adminAuthHandler.VerifyToken)

		guarded := adminGroup.Group("", r.authMiddleware.AuthenticateAdmin)
		{
			guarded.POST("/logout", r.adminAuthHandler.Logout)
			guarded.POST("/create-admin", r.adminAuthHandler.CreateAdmin, r.authMiddleware.RequireSuperAdmin)

			guarded.GET("/dashboard/stats", r.adminDashboardHandler.Stats)
			guarded.GET("/dashboard/usuarios", r.adminDashboardHandler.ListUsers)
			guarded.GET("/dashboard/pedidos", r.adminDashboardHandler.ListOrders)
			guarded.GET("/dashboard/reservas", r.adminDashboardHandler.ListReservations)
			guarded.GET("/dashboard/logs", r.adminDashboardHandler.ListAuditLogs)
			guarded.POST("/dashboard/usuario/:id/toggle-status", r.adminDashboardHandler.ToggleUserStatus)
			guarded.POST("/dashboard/pedido/:id/update-status", r.adminDashboardHandler.UpdateOrderStatus)
			guarded.POST("/dashboard/reserva/:id/cancel", r.adminDashboardHandler.CancelReservation)

			guarded.GET("/pedidos", r.adminDashboardHandler.ListOrders)
			guarded.GET("/reservas", r.adminDashboardHandler.ListReservations)
			guarded.GET("/mesas/status", r.adminDashboardHandler.TablesStatus)
			guarded.GET("/pagamentos", r.adminDashboardHandler.ListPayments)
			guarded.POST("/pagamentos/:id/confirmar", r.adminDashboardHandler.ConfirmPayment)
		}
	}
}
