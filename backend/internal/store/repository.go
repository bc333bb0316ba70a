package store

import (
	"context"
	"fmt"

	"charnet/backend/internal/characters"
	apperrors "charnet/backend/pkg/errors"
	"charnet/backend/pkg/logger"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Repository reads and writes the character table as (:Character) nodes.
// Only source records are stored; relationship graphs are always derived in memory.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new character repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

// Connect opens a driver and verifies the server is reachable
func Connect(ctx context.Context, uri, user, password string) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}
	return driver, nil
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

// CreateConstraints keys characters by table position and indexes names.
// Names may repeat across a table, so they are never a unique key.
func (r *Repository) CreateConstraints(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	queries := []string{
		`DROP CONSTRAINT character_name IF EXISTS`,
		`CREATE CONSTRAINT character_position IF NOT EXISTS FOR (c:Character) REQUIRE c.position IS UNIQUE`,
		`CREATE INDEX character_name_index IF NOT EXISTS FOR (c:Character) ON (c.name)`,
	}
	for _, query := range queries {
		if _, err := session.Run(ctx, query, nil); err != nil {
			return apperrors.NewGraphQueryFailed("create constraints", err)
		}
	}
	return nil
}

// LoadTable reads every character in stored position order
func (r *Repository) LoadTable(ctx context.Context) (*characters.Table, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (c:Character)
		RETURN
			c.name as name,
			c.games as games,
			c.friends as friends,
			c.enemies as enemies,
			c.locations as locations,
			c.concepts as concepts,
			c.objects as objects,
			c.description as description
		ORDER BY c.position ASC
	`

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, apperrors.NewGraphQueryFailed("load characters", err)
	}

	var records []characters.Record
	for result.Next(ctx) {
		records = append(records, recordToCharacter(result.Record()))
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewGraphQueryFailed("load characters", err)
	}

	r.logger.Info("Character table loaded from Neo4j", zap.Int("characters", len(records)))
	return characters.NewTable(records), nil
}

// ReplaceTable removes all stored characters and writes table in its order,
// in a single transaction.
func (r *Repository) ReplaceTable(ctx context.Context, table *characters.Table) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	rows := characterRows(table)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := tx.Run(ctx, `MATCH (c:Character) DETACH DELETE c`, nil); err != nil {
			return nil, fmt.Errorf("failed to clear characters: %w", err)
		}

		query := `
			UNWIND $rows AS row
			CREATE (c:Character)
			SET c = row
		`
		if _, err := tx.Run(ctx, query, map[string]any{"rows": rows}); err != nil {
			return nil, fmt.Errorf("failed to create characters: %w", err)
		}
		return nil, nil
	})
	if err != nil {
		return apperrors.NewGraphQueryFailed("replace characters", err)
	}

	r.logger.Info("Character table stored in Neo4j", zap.Int("characters", len(rows)))
	return nil
}
