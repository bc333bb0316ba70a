package main

import (
	"path/filepath"
	"testing"

	"charnet/backend/pkg/config"
	apperrors "charnet/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingFileReturnsError(t *testing.T) {
	cfg := &config.Config{
		DataSource:        config.DataSourceNeo4j,
		CharacterFiles:    []string{filepath.Join(t.TempDir(), "missing.csv")},
		LoaderConcurrency: 1,
		Neo4jURI:          "bolt://localhost:7687",
	}

	err := run(cfg, false)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeLoader))
}
