package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"charnet/backend/internal/explorer"
	"charnet/backend/internal/source"
	"charnet/backend/pkg/config"
	"charnet/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	files := flag.String("files", "", "Comma-separated CSV files (overrides CHARACTER_FILES)")
	flag.Parse()

	cfg, err := config.Load(fileOverrides(*files)...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// The menu owns stdout; keep logs quiet unless asked for
	level := cfg.LogLevel
	if level == "" {
		level = "warn"
	}
	if err := logger.Init(cfg.Env, level); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	table, err := source.OpenTable(ctx, cfg)
	cancel()
	if err != nil {
		logger.Get().Error("Failed to load character table",
			zap.Error(err),
			zap.String("files", strings.Join(cfg.CharacterFiles, ",")),
		)
		os.Exit(1)
	}

	newMenu(explorer.NewService(table), os.Stdin, os.Stdout).run()
}

// fileOverrides reads the named CSV files instead of the configured source
func fileOverrides(files string) []config.Option {
	if strings.TrimSpace(files) == "" {
		return nil
	}
	return []config.Option{
		config.WithDataSource(config.DataSourceCSV),
		config.WithCharacterFiles(files),
	}
}
