package routes

import (
	"time"

	"og-partnerhub/internal/adapters/http/handlers"
	"og-partnerhub/internal/adapters/http/middleware"
	"og-partnerhub/internal/adapters/persistence/repositories"
	"og-partnerhub/internal/config"
	"og-partnerhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	expertRepo := repositories.NewExpertRepository(db)
	saleRepo := repositories.NewSaleRepository(db)
	costRepo := repositories.NewOperationalCostRepository(db)
	reportRepo := repositories.NewFinancialReportRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	expertService := services.NewExpertService(expertRepo, userRepo)
	saleService := services.NewSaleService(saleRepo, expertRepo)
	costService := services.NewCostService(costRepo, expertRepo, userRepo)
	reportService := services.NewReportService(reportRepo, expertRepo, saleRepo, costRepo)
	dashboardService := services.NewDashboardService(expertRepo, saleRepo, costRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	expertHandler := handlers.NewExpertHandler(expertService)
	saleHandler := handlers.NewSaleHandler(saleService)
	costHandler := handlers.NewCostHandler(costService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (stricter rate limit on credential endpoints)
	auth := apiV1.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", middleware.AuthRateLimiter(), authHandler.Refresh)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Public tenant lookup (cacheable, branding changes rarely)
	apiV1.Get("/experts/subdomain/:subdomain",
		middleware.PublicCacheHeaders(5*time.Minute), expertHandler.GetBySubdomain)

	// Authenticated routes
	authed := apiV1.Group("", middleware.AuthMiddleware(cfg))

	// User management (admin only)
	users := authed.Group("/users", middleware.AdminOnly())
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Expert management
	experts := authed.Group("/experts")
	experts.Post("/", middleware.ManagerOrAdmin(), expertHandler.Create)
	experts.Get("/", expertHandler.List)
	experts.Get("/:id", expertHandler.Get)
	experts.Patch("/:id", middleware.ManagerOrAdmin(), expertHandler.Update)
	experts.Delete("/:id", middleware.AdminOnly(), expertHandler.Delete)

	// Per-expert financial data (never cached)
	experts.Get("/:id/sales", middleware.NoCacheHeaders(), saleHandler.ListByExpert)
	experts.Get("/:id/costs", middleware.NoCacheHeaders(), costHandler.ListByExpert)
	experts.Get("/:id/reports", middleware.NoCacheHeaders(), reportHandler.ListByExpert)
	experts.Get("/:id/summary", middleware.NoCacheHeaders(), dashboardHandler.ExpertSummary)

	// Sales
	sales := authed.Group("/sales", middleware.NoCacheHeaders())
	sales.Post("/", middleware.ManagerOrAdmin(), saleHandler.Create)
	sales.Get("/:id", saleHandler.Get)
	sales.Delete("/:id", middleware.AdminOnly(), saleHandler.Delete)

	// Operational costs
	costs := authed.Group("/costs", middleware.NoCacheHeaders())
	costs.Post("/", middleware.ManagerOrAdmin(), costHandler.Create)
	costs.Get("/:id", costHandler.Get)
	costs.Patch("/:id", middleware.ManagerOrAdmin(), costHandler.Update)
	costs.Delete("/:id", middleware.ManagerOrAdmin(), costHandler.Delete)

	// Financial reports
	reports := authed.Group("/reports", middleware.NoCacheHeaders())
	reports.Post("/generate", middleware.ManagerOrAdmin(), reportHandler.Generate)
	reports.Get("/:id", reportHandler.Get)
	reports.Post("/:id/finalize", middleware.AdminOnly(), reportHandler.Finalize)
	reports.Delete("/:id", middleware.AdminOnly(), reportHandler.Delete)

	// Platform dashboard (admin or manager)
	dashboard := authed.Group("/dashboard", middleware.ManagerOrAdmin(), middleware.NoCacheHeaders())
	dashboard.Get("/summary", dashboardHandler.PlatformSummary)
}
