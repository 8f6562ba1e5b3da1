// Package app assembles the portal's fiber application.
package app

import (
	"time"

	"portal/internal/auth"
	"portal/internal/config"
	"portal/internal/handlers"
	"portal/internal/middleware"
	"portal/internal/repositories"
	"portal/internal/services"
	"portal/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Dependencies are the external resources the application runs on.
type Dependencies struct {
	DB        *gorm.DB
	Storage   storage.Gateway
	Publisher services.EventPublisher // optional
}

// New wires repositories, services and handlers into a fiber app.
func New(cfg *config.Config, deps Dependencies) *fiber.App {
	store := repositories.NewGORMStore(deps.DB)
	sessions := auth.NewSessionManager(cfg.JWTSecret, cfg.JWTTTL)

	// --- Services ---
	userService := services.NewUserService(store, cfg.BcryptCost)
	activityService := services.NewActivityLogService(store, deps.Publisher)
	authService := services.NewAuthService(userService, sessions)
	productService := services.NewProductService(store, deps.Storage, cfg.LatestProductsLimit)
	sellerService := services.NewSellerService(store, userService, activityService)
	adminService := services.NewAdminService(store, userService, activityService)
	categoryService := services.NewCategoryService(store)
	shopService := services.NewShopService(store)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    10 * 1024 * 1024,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PATCH,OPTIONS",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Routes ---
	authRequired := middleware.AuthRequired(sessions, cfg.CookieName)
	handlers.NewAuthHandler(authService, cfg.CookieName, cfg.CookieSecure).RegisterRoutes(app, authRequired)
	handlers.NewProductHandler(productService).RegisterRoutes(app, authRequired)
	handlers.NewSellerHandler(sellerService).RegisterRoutes(app, authRequired)
	handlers.NewAdminHandler(adminService).RegisterRoutes(app, authRequired)
	handlers.NewCategoryHandler(categoryService).RegisterRoutes(app, authRequired)
	handlers.NewShopHandler(shopService).RegisterRoutes(app, authRequired)
	handlers.NewActivityLogHandler(activityService, cfg.ActivityLogLimit).RegisterRoutes(app, authRequired)

	return app
}
