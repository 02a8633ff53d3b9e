package main

import (
	"go.uber.org/zap"

	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/logging"
	"github.com/example/innatural/internal/routes"
	"github.com/example/innatural/internal/services"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.AppEnv)
	defer logger.Sync()

	catalog := services.NewCatalogService(cfg.CatalogPath, logger)
	if err := catalog.Reload(); err != nil {
		logger.Warn("starting without a catalog; POST /api/admin/reload once it exists", zap.Error(err))
	}
	if !cfg.AdminEnabled() {
		logger.Info("admin endpoints disabled; set JWT_SECRET and ADMIN_PASSWORD_HASH to enable")
	}

	app := routes.New(cfg, catalog)

	logger.Info("starting server",
		zap.String("port", cfg.AppPort),
		zap.String("static_dir", cfg.StaticDir),
		zap.String("index", cfg.IndexFile),
	)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("fiber.Listen error", zap.Error(err))
	}
}
