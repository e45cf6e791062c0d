package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"accverse/internal/auth"
	"accverse/internal/config"
	"accverse/internal/handlers"
	"accverse/internal/middleware"
	"accverse/internal/pdf"
	"accverse/internal/repositories"
	"accverse/internal/routes"
	"accverse/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "accverse/docs"
)

// newRouter builds the engine with the shared middleware chain and the
// error boundaries every route sits behind.
func newRouter(corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.Use(middleware.CorrelationID())
	router.Use(middleware.CORS(corsOrigins))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})
	// gin only consults NoMethod when this flag is on
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	return router
}

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	fileRepo := repositories.NewTaxFormFileRepository(db)
	formRepo := repositories.NewTaxFormRepository(db, fileRepo)
	bookingRepo := repositories.NewBookingRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	pricingRepo := repositories.NewPricingRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
		cfg.Email.ResetBaseURL,
	)
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	userService := services.NewUserService(userRepo)
	resetService := services.NewPasswordResetService(userRepo, emailService, authService)
	formService := services.NewTaxFormService(formRepo, fileRepo)
	bookingService := services.NewBookingService(bookingRepo)
	billingService := services.NewBillingService(paymentRepo, pricingRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)

	summaries := pdf.NewSummaryGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService, resetService, tokens)
	userHandler := handlers.NewUserHandler(userService)
	taxFormHandler := handlers.NewTaxFormHandler(formService, userService, summaries, cfg.Files.UploadsDir)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	billingHandler := handlers.NewBillingHandler(billingService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// === Gin ===
	router := newRouter(cfg.CORS.Origins)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		tokens,
		authHandler,
		userHandler,
		taxFormHandler,
		bookingHandler,
		billingHandler,
		notificationHandler,
		dashboardHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
