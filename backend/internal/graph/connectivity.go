package graph

import (
	"charnet/backend/internal/characters"
	apperrors "charnet/backend/pkg/errors"
)

// Connectivity is the number of distinct characters directly tied to Name
// through a shared game, a friend listing or an enemy listing.
type Connectivity struct {
	Name        string `json:"name"`
	Connections int    `json:"connections"`
}

// ConnectionCounts returns every character's connection count in table order
func ConnectionCounts(table *characters.Table) []Connectivity {
	index := indexGames(table)
	counts := make([]Connectivity, 0, table.Len())

	for _, rec := range table.All() {
		connected := make(map[string]struct{})
		for _, game := range rec.Games {
			for _, pos := range index[game] {
				connected[table.At(pos).Name] = struct{}{}
			}
		}
		for _, friend := range rec.Friends {
			connected[friend] = struct{}{}
		}
		for _, enemy := range rec.Enemies {
			connected[enemy] = struct{}{}
		}
		delete(connected, rec.Name)

		counts = append(counts, Connectivity{Name: rec.Name, Connections: len(connected)})
	}
	return counts
}

// FindMostConnected returns the character with the most connections.
// Ties go to the first in table order.
func FindMostConnected(table *characters.Table) (Connectivity, error) {
	counts := ConnectionCounts(table)
	if len(counts) == 0 {
		return Connectivity{}, apperrors.ErrEmptyTable
	}

	best := counts[0]
	for _, c := range counts[1:] {
		if c.Connections > best.Connections {
			best = c
		}
	}
	return best, nil
}
