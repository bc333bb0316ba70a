package explorer

import (
	"charnet/backend/internal/characters"
	"charnet/backend/internal/graph"
	apperrors "charnet/backend/pkg/errors"
	"charnet/backend/pkg/logger"

	"go.uber.org/zap"
)

// Service answers relationship queries over a read-only character table
type Service struct {
	table  *characters.Table
	logger *zap.Logger
}

// NewService creates a service over table. The table must not be modified afterwards.
func NewService(table *characters.Table) *Service {
	return &Service{
		table:  table,
		logger: logger.Get(),
	}
}

// Names returns every character name in table order
func (s *Service) Names() []string {
	return s.table.Names()
}

// Character looks up a single record by name
func (s *Service) Character(name string) (characters.Record, error) {
	rec, err := s.table.Lookup(name)
	if err != nil {
		s.logger.Debug("Character lookup missed", zap.String("name", name))
		return characters.Record{}, err
	}
	return rec, nil
}

// Related returns the characters most similar to name
func (s *Service) Related(name string) ([]graph.Similarity, error) {
	results, err := graph.FindRelated(name, s.table)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Related characters ranked",
		zap.String("name", name),
		zap.Int("results", len(results)),
	)
	return results, nil
}

// ShortestPath builds a fresh graph and searches it. A missing path, including
// one to or from an unknown name, is reported as *errors.ErrNoPath.
func (s *Service) ShortestPath(from, to string) (*graph.Path, error) {
	g := graph.Build(s.table)

	path, found := graph.FindShortestPath(from, to, g)
	if !found {
		s.logger.Debug("No path between characters",
			zap.String("from", from),
			zap.String("to", to),
			zap.Bool("from_known", g.Has(from)),
			zap.Bool("to_known", g.Has(to)),
			zap.Int("graph_nodes", g.Len()),
		)
		return nil, apperrors.NewNoPath(from, to)
	}

	s.logger.Debug("Shortest path found",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("hops", path.Len()),
	)
	return path, nil
}

// MostConnected returns the character with the most direct connections
func (s *Service) MostConnected() (graph.Connectivity, error) {
	return graph.FindMostConnected(s.table)
}

// Connections returns every character's connection count in table order
func (s *Service) Connections() []graph.Connectivity {
	return graph.ConnectionCounts(s.table)
}
