// Package source opens the character table named by the configuration.
package source

import (
	"context"

	"charnet/backend/internal/characters"
	"charnet/backend/internal/loader"
	"charnet/backend/internal/store"
	"charnet/backend/pkg/config"
	apperrors "charnet/backend/pkg/errors"
	"charnet/backend/pkg/logger"

	"go.uber.org/zap"
)

// OpenTable loads the table from CSV files or Neo4j, depending on cfg.DataSource
func OpenTable(ctx context.Context, cfg *config.Config) (*characters.Table, error) {
	log := logger.Get()

	switch cfg.DataSource {
	case config.DataSourceCSV:
		log.Info("Loading characters from CSV", zap.Strings("files", cfg.CharacterFiles))
		return loader.LoadFiles(ctx, cfg.CharacterFiles, cfg.LoaderConcurrency)

	case config.DataSourceNeo4j:
		log.Info("Loading characters from Neo4j", zap.String("uri", cfg.Neo4jURI))
		driver, err := store.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
		if err != nil {
			return nil, err
		}
		repo := store.NewRepository(driver)
		defer repo.Close()

		return repo.LoadTable(ctx)
	}

	return nil, apperrors.NewConfigValidationFailed("DATA_SOURCE", "unknown source "+cfg.DataSource)
}
