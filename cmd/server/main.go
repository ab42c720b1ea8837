// Package main implements the entry point for the pegword API server,
// which manages users' major-system peg-word tables and provides
// LLM-backed word suggestions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/pegword-api/internal/config"
	"github.com/phrazzld/pegword-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) instead of the server")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, sets up logging, and either runs migrations or
// starts the server, depending on the migrate flag.
func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"suggestions_enabled", cfg.Suggest.Enabled())

	if migrateCmd != "" {
		return runMigrations(cfg, log, migrateCmd)
	}

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(ctx, cfg, log, db)
	if err != nil {
		// The application owns the connection once constructed; on a
		// construction failure we still hold it.
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
