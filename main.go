// File: /main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"motolog-api/config"
	"motolog-api/database"
	"motolog-api/jobs"
	"motolog-api/middleware"
	"motolog-api/repositories"
	"motolog-api/routes"
	"motolog-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.Initialize(cfg.DBType, cfg.DatabaseURL, cfg.DBMaxConns, gin.Mode() == gin.DebugMode)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations and the optional start-up bootstrap
	if err := prepareDatabase(context.Background(), db, cfg); err != nil {
		log.Fatal(err)
	}

	emailService := services.NewEmailService(cfg)
	if !emailService.Enabled() {
		log.Println("SMTP_HOST not set, verification emails will only be logged")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	if gin.Mode() == gin.DebugMode {
		router.Use(middleware.RequestLogger())
	}

	routes.SetupRoutes(router, db, cfg, emailService)

	cleanupJob := jobs.NewSessionCleanupJob(db, cfg, emailService)
	cleanupJob.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting Motolog API server on port %s", cfg.Port)
		log.Printf("Health check available at: http://localhost:%s/api/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	cleanupJob.Stop()

	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}

	log.Println("Server exited")
}

// prepareDatabase migrates the schema. The motorcycle is normally created lazily by the
// first request that needs it, so it can take the signed-in user as owner; with
// BOOTSTRAP_ON_STARTUP it is created here for the default owner instead.
func prepareDatabase(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := database.Migrate(db); err != nil {
		return err
	}

	if !cfg.BootstrapOnStartup {
		return nil
	}

	garage := services.NewGarageService(repositories.NewMotorcycleRepository(db), cfg.SingleMotorcycle, cfg.DefaultOwnerID)
	if err := garage.EnsureMotorcycle(ctx, ""); err != nil {
		return fmt.Errorf("failed to bootstrap motorcycle: %w", err)
	}
	return nil
}
