package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"charnet/backend/internal/loader"
	"charnet/backend/internal/store"
	"charnet/backend/pkg/config"
	"charnet/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	files := flag.String("files", "", "Comma-separated CSV files to import (defaults to CHARACTER_FILES)")
	force := flag.Bool("force", false, "Replace characters already stored in Neo4j")
	flag.Parse()

	// The seeder reads CSV and writes Neo4j regardless of DATA_SOURCE
	cfg, err := config.Load(
		config.WithDataSource(config.DataSourceNeo4j),
		config.WithCharacterFiles(*files),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	err = run(cfg, *force)
	if err != nil {
		logger.Get().Error("Seeding failed", zap.Error(err))
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, force bool) error {
	log := logger.Get()
	log.Info("Starting character seeding...")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	table, err := loader.LoadFiles(ctx, cfg.CharacterFiles, cfg.LoaderConcurrency)
	if err != nil {
		return fmt.Errorf("load character files: %w", err)
	}

	driver, err := store.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
	if err != nil {
		return err
	}
	repo := store.NewRepository(driver)
	defer repo.Close()

	// Create constraints
	log.Info("Creating constraints...")
	if err := repo.CreateConstraints(ctx); err != nil {
		log.Warn("Failed to create constraints (may already exist)", zap.Error(err))
	}

	existing, err := repo.LoadTable(ctx)
	if err != nil {
		return fmt.Errorf("read stored characters: %w", err)
	}
	if existing.Len() > 0 && !force {
		log.Info("Characters already stored, skipping import (use -force to replace)",
			zap.Int("stored", existing.Len()),
		)
		return nil
	}

	if err := repo.ReplaceTable(ctx, table); err != nil {
		return fmt.Errorf("store characters: %w", err)
	}

	log.Info("Seeding complete",
		zap.Int("characters", table.Len()),
		zap.Strings("files", cfg.CharacterFiles),
	)
	return nil
}
