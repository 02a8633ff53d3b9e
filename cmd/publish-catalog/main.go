// Command publish-catalog validates config/products.json and upserts it into
// the database named by DATABASE_URL.
//
// Paths resolve from the binary's directory, so build it and run the binary;
// under go run the binary lives in the build cache and ../config is not found.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/database"
	"github.com/example/innatural/internal/logging"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
	"github.com/example/innatural/internal/validate"
)

const catalogPath = "../config/products.json"

func main() {
	if _, err := utils.ChdirToExecutable(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to change working directory: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	logger := logging.New(cfg.AppEnv)
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, logger)

	if err := run(cfg, logger, telegram); err != nil {
		logger.Error("publish failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config, logger *zap.Logger, telegram *services.TelegramService) error {
	doc, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	if result := validate.Catalog(doc); !result.OK() {
		for _, issue := range result.Errors {
			logger.Error("validation error", zap.String("issue", issue.String()))
		}
		return fmt.Errorf("catalog has %d validation errors, not publishing", len(result.Errors))
	}

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	stats, err := database.Publish(db, doc)
	if err != nil {
		return fmt.Errorf("publish catalog: %w", err)
	}

	logger.Info("catalog published",
		zap.String("run_id", stats.RunID.String()),
		zap.Int("collections", stats.Collections),
		zap.Int("products", stats.Products),
		zap.Int("bundles", stats.Bundles),
		zap.Int64("removed", stats.Removed),
	)

	msg := fmt.Sprintf("<b>🗄 Catalog published</b>\n<b>Run:</b> <code>%s</code>\n<b>Version:</b> %s\n<b>Products:</b> %d\n<b>Bundles:</b> %d\n<b>Removed:</b> %d",
		stats.RunID, doc.Metadata.Version, stats.Products, stats.Bundles, stats.Removed)
	if telegram.Enabled() {
		if err := telegram.SendToAdmin(context.Background(), msg); err != nil {
			logger.Warn("publish notification failed", zap.Error(err))
		}
	}
	return nil
}
