// Package loader reads character tables from CSV exports.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"charnet/backend/internal/characters"
	"charnet/backend/internal/constants"
	apperrors "charnet/backend/pkg/errors"
	"charnet/backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Column names expected in the header row
const (
	ColumnName        = "name"
	ColumnGames       = "games"
	ColumnFriends     = "friends"
	ColumnEnemies     = "enemies"
	ColumnLocations   = "locations"
	ColumnConcepts    = "concepts"
	ColumnObjects     = "objects"
	ColumnDescription = "deck"
)

// ParseCSV reads one CSV document. source is only used in error messages.
// Fields are trimmed, list columns are split on ';' with blank items dropped,
// and a missing description gets the placeholder.
func ParseCSV(r io.Reader, source string) (*characters.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return characters.NewTable(nil), nil
	}
	if err != nil {
		return nil, apperrors.NewLoaderParseFailed(source, 1, "unreadable header", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	if _, ok := columns[ColumnName]; !ok {
		return nil, apperrors.NewLoaderParseFailed(source, 1, "header has no name column", nil)
	}

	field := func(row []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []characters.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, apperrors.NewLoaderParseFailed(source, line, "malformed row", err)
		}
		line, _ := reader.FieldPos(0)

		name := field(row, ColumnName)
		if name == "" {
			return nil, apperrors.NewLoaderParseFailed(source, line, "row has no name", nil)
		}

		records = append(records, characters.Record{
			Name:        name,
			Games:       splitList(field(row, ColumnGames)),
			Friends:     splitList(field(row, ColumnFriends)),
			Enemies:     splitList(field(row, ColumnEnemies)),
			Locations:   splitList(field(row, ColumnLocations)),
			Concepts:    splitList(field(row, ColumnConcepts)),
			Objects:     splitList(field(row, ColumnObjects)),
			Description: field(row, ColumnDescription),
		})
	}

	return characters.NewTable(records), nil
}

// LoadFile parses a single CSV file
func LoadFile(path string) (*characters.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewLoaderFileFailed(path, err)
	}
	defer f.Close()

	return ParseCSV(f, path)
}

// LoadFiles parses paths concurrently, at most concurrency at a time, and
// concatenates the results in argument order.
func LoadFiles(ctx context.Context, paths []string, concurrency int) (*characters.Table, error) {
	log := logger.Get()

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	tables := make([]*characters.Table, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			table, err := LoadFile(path)
			if err != nil {
				return err
			}
			tables[i] = table

			log.Debug("Character file loaded",
				zap.String("path", path),
				zap.Int("characters", table.Len()),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading character files: %w", err)
	}

	table := characters.Concat(tables...)
	log.Info("Character table loaded",
		zap.Int("files", len(paths)),
		zap.Int("characters", table.Len()),
	)
	return table, nil
}

func splitList(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, constants.ListDelimiter)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

