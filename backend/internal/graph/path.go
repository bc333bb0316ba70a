package graph

// Hop is one edge of a path
type Hop struct {
	From string `json:"from"`
	Game string `json:"game"`
	To   string `json:"to"`
}

// Path is a chain of characters joined by shared games. Games[i] links
// Characters[i] and Characters[i+1].
type Path struct {
	Characters []string `json:"characters"`
	Games      []string `json:"games"`
}

// Len returns the number of hops
func (p *Path) Len() int {
	return len(p.Games)
}

// Hops pairs each game with the characters it connects
func (p *Path) Hops() []Hop {
	hops := make([]Hop, 0, len(p.Games))
	for i, game := range p.Games {
		hops = append(hops, Hop{From: p.Characters[i], Game: game, To: p.Characters[i+1]})
	}
	return hops
}

type pathStep struct {
	name       string
	characters []string
	games      []string
}

// FindShortestPath runs a breadth-first search from source to target.
// Only the first shared game of an edge is used, and a neighbor is marked
// visited when it is enqueued. Among equally short paths the one found follows
// graph insertion order. The bool is false when no path exists, including
// when either name is not in the graph.
func FindShortestPath(source, target string, g *Graph) (*Path, bool) {
	if source == target {
		return &Path{Characters: []string{source}, Games: []string{}}, true
	}

	queue := []pathStep{{name: source, characters: []string{source}}}
	visited := map[string]bool{source: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range g.Neighbors(current.name) {
			if visited[neighbor] {
				continue
			}
			game, ok := g.firstGame(current.name, neighbor)
			if !ok {
				continue
			}

			characters := append(append([]string(nil), current.characters...), neighbor)
			games := append(append([]string(nil), current.games...), game)
			if neighbor == target {
				return &Path{Characters: characters, Games: games}, true
			}

			visited[neighbor] = true
			queue = append(queue, pathStep{name: neighbor, characters: characters, games: games})
		}
	}

	return nil, false
}
