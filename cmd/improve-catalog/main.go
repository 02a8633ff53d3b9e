// Command improve-catalog rewrites body product copy in config/products.json
// in place.
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
	"github.com/example/innatural/internal/improve"
	"github.com/example/innatural/internal/logging"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
)

const (
	catalogPath = "../config/products.json"
	outputPath  = "../config/products.json"
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

	logger.Info("improving catalog", zap.String("workdir", dir), zap.String("version", catalog.ImproveVersion))
	if err := run(logger, telegram); err != nil {
		logger.Error("improvement failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(logger *zap.Logger, telegram *services.TelegramService) error {
	// The corrector never fails part-way through a document, so writing
	// back onto the input is allowed.
	if err := catalog.GuardInPlace(catalogPath, outputPath, true); err != nil {
		return err
	}

	doc, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}

	corrector := improve.NewCorrector(logger)
	improved, report := corrector.Run(doc)
	catalog.Stamp(improved, catalog.StageImprove, catalog.ImproveVersion, time.Now())

	if err := catalog.Save(outputPath, improved); err != nil {
		return err
	}

	logger.Info("improvement complete",
		zap.String("output", outputPath),
		zap.Int("total", report.Total),
		zap.Int("corrected", report.Corrected),
		zap.Int("descriptions_rewritten", report.DescriptionsRewritten),
		zap.Int("skipped", len(report.Skipped)),
	)
	fmt.Print(report.Summary())

	if err := telegram.NotifyReport(context.Background(), report); err != nil {
		logger.Warn("report notification failed", zap.Error(err))
	}
	return nil
}
