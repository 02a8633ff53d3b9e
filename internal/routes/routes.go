package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/handlers"
	"github.com/example/innatural/internal/middleware"
	"github.com/example/innatural/internal/services"
)

// New builds the storefront server: catalog API under /api and the chat
// widget front end everywhere else.
func New(cfg *config.Config, catalog *services.CatalogService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Innatural Catalog Server",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.AllowAnyOrigin())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	Register(app, cfg, catalog)

	app.Static("/", cfg.StaticDir, fiber.Static{
		Index: cfg.IndexFile,
	})

	return app
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, cfg *config.Config, catalog *services.CatalogService) {
	catalogHandler := handlers.NewCatalogHandler(catalog)
	adminHandler := handlers.NewAdminHandler(cfg, catalog)

	api := app.Group("/api")

	api.Get("/health", catalogHandler.Health)
	api.Get("/catalog", catalogHandler.Document)

	products := api.Group("/products")
	products.Get("/", catalogHandler.ListProducts)
	products.Get("/:id", catalogHandler.GetProduct)

	api.Get("/collections", catalogHandler.ListCollections)
	api.Get("/bundles", catalogHandler.ListBundles)

	admin := api.Group("/admin")
	admin.Post("/login", middleware.NewRateLimiter(10*time.Second, 5).Handler(), adminHandler.Login)
	admin.Post("/reload", middleware.AdminOnly(cfg.JWTSecret), adminHandler.Reload)
}
