package store

import (
	"charnet/backend/internal/characters"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// characterRows turns a table into node property maps, keeping table position
func characterRows(table *characters.Table) []map[string]any {
	rows := make([]map[string]any, 0, table.Len())
	for i, rec := range table.All() {
		rows = append(rows, map[string]any{
			"name":        rec.Name,
			"position":    int64(i),
			"games":       rec.Games,
			"friends":     rec.Friends,
			"enemies":     rec.Enemies,
			"locations":   rec.Locations,
			"concepts":    rec.Concepts,
			"objects":     rec.Objects,
			"description": rec.Description,
		})
	}
	return rows
}

func recordToCharacter(record *neo4j.Record) characters.Record {
	return characters.Record{
		Name:        getStringFromRecord(record, "name"),
		Games:       getStringSliceFromRecord(record, "games"),
		Friends:     getStringSliceFromRecord(record, "friends"),
		Enemies:     getStringSliceFromRecord(record, "enemies"),
		Locations:   getStringSliceFromRecord(record, "locations"),
		Concepts:    getStringSliceFromRecord(record, "concepts"),
		Objects:     getStringSliceFromRecord(record, "objects"),
		Description: getStringFromRecord(record, "description"),
	}
}

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getStringSliceFromRecord(record *neo4j.Record, key string) []string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return []string{}
	}
	switch slice := val.(type) {
	case []string:
		return append([]string{}, slice...)
	case []any:
		result := make([]string, 0, len(slice))
		for _, v := range slice {
			if str, ok := v.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return []string{}
}
