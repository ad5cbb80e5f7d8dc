package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/money_tracker_app/internal/core/services"
	"github.com/SscSPs/money_tracker_app/internal/dto"
	"github.com/SscSPs/money_tracker_app/internal/platform/config"
	"github.com/SscSPs/money_tracker_app/internal/platform/migrations"
	"github.com/SscSPs/money_tracker_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/money_tracker_app/pkg/database"
	"github.com/spf13/pflag"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	seedFile := pflag.StringP("file", "f", "seed.json", "path to the seed JSON document")
	pflag.Parse()

	if err := run(context.Background(), logger, *seedFile); err != nil {
		logger.Error("Seeding failed", slog.String("file", *seedFile), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, path string) error {
	doc, err := readSeedDocument(path)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	if cfg.RunMigrations {
		if err := migrations.Run(cfg.DatabaseURL, logger); err != nil {
			return err
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	seeder := services.NewSeedService(repos.CategoryRepo, repos.TransactionRepo)

	result, err := seeder.Seed(ctx, *doc)
	if err != nil {
		return err
	}

	logger.Info("Seed complete",
		slog.String("file", path),
		slog.Int("categories_created", result.CategoriesCreated),
		slog.Int("categories_reused", result.CategoriesReused),
		slog.Int("transactions", result.Transactions))
	return nil
}

func readSeedDocument(path string) (*dto.SeedDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var doc dto.SeedDocument
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return &doc, nil
}
