package graph

import "charnet/backend/internal/characters"

// gameIndex maps a game to the positions of the records listing it, in table
// order. A record is indexed once per game even if it lists the game twice.
type gameIndex map[string][]int

func indexGames(table *characters.Table) gameIndex {
	index := make(gameIndex)
	for i, rec := range table.All() {
		seen := make(map[string]bool, len(rec.Games))
		for _, game := range rec.Games {
			if seen[game] {
				continue
			}
			seen[game] = true
			index[game] = append(index[game], i)
		}
	}
	return index
}

// Build derives the co-appearance graph. For each character in table order and
// each game in its list (repeats included), every other character listing that
// game gets the game appended to the edge, in table order.
func Build(table *characters.Table) *Graph {
	g := newGraph()
	index := indexGames(table)

	for _, rec := range table.All() {
		g.ensure(rec.Name)
		for _, game := range rec.Games {
			for _, pos := range index[game] {
				other := table.At(pos).Name
				if other == rec.Name {
					continue
				}
				g.addGame(rec.Name, other, game)
			}
		}
	}
	return g
}
