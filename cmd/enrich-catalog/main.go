// Command enrich-catalog fills in descriptions and benefits for the current
// catalog, from the legacy backup where a match exists and from templates
// otherwise, and writes products_enriched.json.
//
// Paths resolve from the binary's directory, so build it and run the binary;
// under go run the binary lives in the build cache and ../config is not found.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/enrich"
	"github.com/example/innatural/internal/identity"
	"github.com/example/innatural/internal/logging"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
	"github.com/example/innatural/internal/validate"
)

const (
	currentCatalog = "../config/products.json"
	backupCatalog  = "../config/products.json.backup"
	outputCatalog  = "../config/products_enriched.json"
)

func main() {
	dir, err := utils.ChdirToExecutable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to change working directory: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	logger := logging.New(cfg.AppEnv)
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, logger)

	logger.Info("enriching catalog", zap.String("workdir", dir), zap.String("version", catalog.EnrichVersion))
	if err := run(logger, telegram); err != nil {
		logger.Error("enrichment failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(logger *zap.Logger, telegram *services.TelegramService) error {
	if err := catalog.GuardInPlace(currentCatalog, outputCatalog, false); err != nil {
		return err
	}

	current, err := catalog.Load(currentCatalog)
	if err != nil {
		return err
	}
	backup, err := catalog.Load(backupCatalog)
	if err != nil {
		return err
	}
	logger.Info("catalogs loaded",
		zap.Int("current_products", len(current.Products)),
		zap.Int("backup_products", len(backup.Products)),
	)

	mapper := identity.Default()
	merger := enrich.NewMerger(mapper, backup, logger)
	enriched, report := merger.Run(current)
	catalog.Stamp(enriched, catalog.StageEnrich, catalog.EnrichVersion, time.Now())

	if err := catalog.Save(outputCatalog, enriched); err != nil {
		return err
	}

	result := validate.Catalog(enriched)
	logger.Info("enrichment complete",
		zap.String("output", outputCatalog),
		zap.Int("total", report.Total),
		zap.Int("matched", report.Matched),
		zap.Int("generated", report.Generated),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("validation_errors", len(result.Errors)),
		zap.Int("validation_warnings", len(result.Warnings)),
	)
	fmt.Print(report.Summary())

	if err := telegram.NotifyReport(context.Background(), report); err != nil {
		logger.Warn("report notification failed", zap.Error(err))
	}
	return nil
}
