package routes

import (
	"github.com/gin-gonic/gin"

	"accverse/internal/auth"
	"accverse/internal/handlers"
	"accverse/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	tokens *auth.TokenManager,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	taxFormHandler *handlers.TaxFormHandler,
	bookingHandler *handlers.BookingHandler,
	billingHandler *handlers.BillingHandler,
	notificationHandler *handlers.NotificationHandler,
	dashboardHandler *handlers.DashboardHandler,
) *gin.Engine {

	api := r.Group("/api")

	// ---- public
	api.POST("/login", authHandler.Login)
	api.POST("/request-password-reset", authHandler.RequestPasswordReset)
	api.POST("/reset-password", authHandler.ResetPassword)

	// ---- protected
	authed := api.Group("", middleware.Authenticate(tokens))

	// USERS (admin)
	adminUsers := authed.Group("", middleware.AdminOnly())
	{
		adminUsers.GET("/users", userHandler.ListUsers)
		adminUsers.GET("/clients", userHandler.ListClients)
	}

	// TAX FORMS
	forms := authed.Group("/tax-forms")
	{
		forms.GET("/user/:user_id", middleware.ClientOrAdmin(), taxFormHandler.GetUserForms)
		forms.GET("/user/:user_id/type/:form_type", middleware.ClientOrAdmin(), taxFormHandler.GetUserFormsByType)
		forms.GET("/type/:form_type", middleware.AdminOnly(), taxFormHandler.GetAllFormsByType)
		forms.GET("/:form_id", middleware.ClientOrAdmin(), taxFormHandler.GetForm)
		forms.GET("/:form_id/summary.pdf", middleware.AdminOnly(), taxFormHandler.GetFormSummaryPDF)
	}

	// TAX FORM FILES
	files := authed.Group("/tax-form-files")
	{
		files.GET("/blob/:file_id", taxFormHandler.GetFileBlob)
		files.GET("/:form_id", middleware.ClientOrAdmin(), taxFormHandler.GetFilesForForm)
		files.GET("/:form_id/file/:file_name", middleware.ClientOrAdmin(), taxFormHandler.GetFileInForm)
	}

	// BOOKING
	authed.GET("/services", bookingHandler.ListServices)
	booking := authed.Group("", middleware.AdminOnly())
	{
		booking.GET("/appointments", bookingHandler.ListAppointments)
		booking.PUT("/services/:id", bookingHandler.UpdateService)
		booking.GET("/booking-config", bookingHandler.GetBookingConfig)
		booking.PUT("/booking-config/:id", bookingHandler.UpdateBookingConfig)
	}

	// BILLING
	authed.GET("/form-payments/user/:user_id", middleware.ClientOrAdmin(), billingHandler.GetUserPayments)
	billing := authed.Group("", middleware.AdminOnly())
	{
		billing.GET("/form-payments", billingHandler.GetAllPayments)
		billing.GET("/form-pricing-configs", billingHandler.GetPricingConfigs)
		billing.PUT("/form-pricing-configs/:id", billingHandler.UpdatePricingConfig)
	}

	// NOTIFICATIONS (any authenticated role)
	notifications := authed.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
		notifications.POST("/:id/archive", notificationHandler.Archive)
		notifications.POST("/:id/unarchive", notificationHandler.Unarchive)
		notifications.POST("/mark-all-read", notificationHandler.MarkAllRead)
	}

	// DASHBOARD (admin)
	dashboard := authed.Group("/dashboard", middleware.AdminOnly())
	{
		dashboard.GET("/main_widgets", dashboardHandler.MainWidgets)
		dashboard.GET("/client-growth", dashboardHandler.ClientGrowth)
	}

	// uploaded files live outside /api, same as the frontend expects
	r.GET("/uploads/tax_forms/*filepath", middleware.Authenticate(tokens), taxFormHandler.ServeUpload)

	return r
}
