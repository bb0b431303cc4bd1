package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"og-partnerhub/internal/adapters/http/middleware"
	"og-partnerhub/internal/adapters/http/routes"
	"og-partnerhub/internal/adapters/persistence/models"
	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/config"
	"og-partnerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "og-partnerhub/docs" // Swagger docs
)

// @title OG PartnerHub API
// @version 1.0
// @description Expert partnership financial tracking API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@ogpartner.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.ogpartner.io
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed default admin user
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start cron service for recurring costs and monthly reports
	expertRepo := repositories.NewExpertRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	costRepo := repositories.NewOperationalCostRepository(db)
	reportRepo := repositories.NewFinancialReportRepository(db)
	reportService := services.NewReportService(reportRepo, expertRepo, saleRepo, costRepo)

	cronService := services.NewCronService(expertRepo, costRepo, reportService)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "OG PartnerHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
