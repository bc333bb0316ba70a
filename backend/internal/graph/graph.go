// Package graph derives the co-appearance graph from a character table and
// answers path, similarity and connectivity queries over it.
package graph

// Graph maps each character to its neighbors and the games they share.
// Characters and neighbors iterate in the order they were first inserted.
type Graph struct {
	order     []string
	adjacency map[string]*adjacency
}

type adjacency struct {
	order []string
	games map[string][]string
}

func newGraph() *Graph {
	return &Graph{adjacency: make(map[string]*adjacency)}
}

// ensure creates an empty adjacency entry for name if none exists
func (g *Graph) ensure(name string) *adjacency {
	adj, ok := g.adjacency[name]
	if !ok {
		adj = &adjacency{games: make(map[string][]string)}
		g.adjacency[name] = adj
		g.order = append(g.order, name)
	}
	return adj
}

// addGame appends game to the from→to label sequence
func (g *Graph) addGame(from, to, game string) {
	adj := g.ensure(from)
	if _, ok := adj.games[to]; !ok {
		adj.order = append(adj.order, to)
	}
	adj.games[to] = append(adj.games[to], game)
}

// Characters returns every node in insertion order
func (g *Graph) Characters() []string {
	return append([]string(nil), g.order...)
}

// Has reports whether name is a node of the graph
func (g *Graph) Has(name string) bool {
	_, ok := g.adjacency[name]
	return ok
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.order)
}

// Neighbors returns the neighbors of name in insertion order.
// Unknown names have no neighbors.
func (g *Graph) Neighbors(name string) []string {
	adj, ok := g.adjacency[name]
	if !ok {
		return nil
	}
	return append([]string(nil), adj.order...)
}

// SharedGames returns the from→to label sequence, duplicates included
func (g *Graph) SharedGames(from, to string) []string {
	adj, ok := g.adjacency[from]
	if !ok {
		return nil
	}
	return append([]string(nil), adj.games[to]...)
}

// firstGame is SharedGames(from, to)[0] without the copy
func (g *Graph) firstGame(from, to string) (string, bool) {
	adj, ok := g.adjacency[from]
	if !ok {
		return "", false
	}
	games := adj.games[to]
	if len(games) == 0 {
		return "", false
	}
	return games[0], true
}
