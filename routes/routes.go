// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"motolog-api/config"
	"motolog-api/controllers"
	"motolog-api/middleware"
	"motolog-api/repositories"
	"motolog-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Repositories
	motorcycleRepo := repositories.NewMotorcycleRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	modificationRepo := repositories.NewModificationRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)
	authRepo := repositories.NewAuthRepository(db)

	// Services
	garage := services.NewGarageService(motorcycleRepo, cfg.SingleMotorcycle, cfg.DefaultOwnerID)
	authService := services.NewAuthService(authRepo, emailService, cfg.SessionSecret, cfg.SessionTTL)

	// Controllers
	healthController := controllers.NewHealthController(db)
	authController := controllers.NewAuthController(authService, cfg.SessionCookie, cfg.SessionTTL)
	dashboardController := controllers.NewDashboardController(services.NewDashboardService(dashboardRepo, motorcycleRepo, garage))
	motorcycleController := controllers.NewMotorcycleController(garage)
	serviceController := controllers.NewServiceController(services.NewServiceRecordService(serviceRepo, garage))
	eventController := controllers.NewEventController(services.NewEventService(eventRepo, garage))
	modificationController := controllers.NewModificationController(services.NewModificationService(modificationRepo, garage))

	metrics := middleware.NewMetrics("motolog")
	r.Use(metrics.Middleware())
	r.Use(middleware.SessionGate(cfg.SessionCookie))

	r.GET("/ping", healthController.Ping)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	api.Use(middleware.ValidateJSON())
	api.Use(middleware.OptionalSession(authService, cfg.SessionCookie))

	api.GET("/health", healthController.Health)

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/sign-up/email", authController.SignUp)
		auth.POST("/sign-in/email", authController.SignIn)
		auth.POST("/sign-out", authController.SignOut)
		auth.GET("/get-session", authController.GetSession)
		auth.POST("/send-verification-email", authController.SendVerificationEmail)
		auth.POST("/verify-email", authController.VerifyEmail)
	}

	// Garage routes, open unless REQUIRE_API_SESSION is set
	garageRoutes := api.Group("")
	if cfg.RequireAPISession {
		garageRoutes.Use(middleware.RequireSession())
	}
	{
		garageRoutes.GET("/dashboard", dashboardController.GetDashboard)
		garageRoutes.GET("/dashboard/activity", dashboardController.GetActivity)

		garageRoutes.GET("/motorcycle", motorcycleController.GetMotorcycle)
		garageRoutes.PUT("/motorcycle", motorcycleController.UpdateMotorcycle)

		serviceRoutes := garageRoutes.Group("/services")
		{
			serviceRoutes.GET("", serviceController.GetServices)
			serviceRoutes.POST("", serviceController.CreateService)
			serviceRoutes.GET("/:id", serviceController.GetService)
			serviceRoutes.PUT("/:id", serviceController.UpdateService)
			serviceRoutes.DELETE("/:id", serviceController.DeleteService)
		}

		eventRoutes := garageRoutes.Group("/events")
		{
			eventRoutes.GET("", eventController.GetEvents)
			eventRoutes.POST("", eventController.CreateEvent)
			eventRoutes.GET("/:id", eventController.GetEvent)
			eventRoutes.PUT("/:id", eventController.UpdateEvent)
			eventRoutes.DELETE("/:id", eventController.DeleteEvent)
		}

		modificationRoutes := garageRoutes.Group("/modifications")
		{
			modificationRoutes.GET("", modificationController.GetModifications)
			modificationRoutes.POST("", modificationController.CreateModification)
			modificationRoutes.GET("/:id", modificationController.GetModification)
			modificationRoutes.PUT("/:id", modificationController.UpdateModification)
			modificationRoutes.DELETE("/:id", modificationController.DeleteModification)
		}
	}
}
