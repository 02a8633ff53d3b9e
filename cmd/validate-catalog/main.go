// Command validate-catalog checks a catalog document and exits 1 when it has
// errors.
//
//	validate-catalog [path]
//
// Relative paths resolve from the binary's directory, so run the built binary
// rather than go run, whose binary lives in the build cache.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/example/innatural/internal/catalog"
	"github.com/example/innatural/internal/config"
	"github.com/example/innatural/internal/logging"
	"github.com/example/innatural/internal/services"
	"github.com/example/innatural/internal/utils"
	"github.com/example/innatural/internal/validate"
)

const defaultCatalog = "../config/products.json"

func main() {
	if _, err := utils.ChdirToExecutable(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to change working directory: %v\n", err)
		os.Exit(1)
	}

	path := defaultCatalog
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg := config.Load()
	logger := logging.New(cfg.AppEnv)
	defer logger.Sync()
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, logger)

	raw, doc, err := catalog.LoadRaw(path)
	if err != nil {
		logger.Error("cannot load catalog", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	result := validate.Document(raw, doc)
	for _, issue := range result.Warnings {
		fmt.Println(issue.String())
	}
	for _, issue := range result.Errors {
		fmt.Println(issue.String())
	}
	logger.Info("validation finished",
		zap.String("path", path),
		zap.Int("products", len(doc.Products)),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)),
	)

	if err := telegram.NotifyValidation(context.Background(), path, result); err != nil {
		logger.Warn("validation notification failed", zap.Error(err))
	}

	if !result.OK() {
		logger.Sync()
		os.Exit(1)
	}
}
