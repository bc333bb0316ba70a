package explorer

import (
	"testing"

	"charnet/backend/internal/characters"
	"charnet/backend/internal/constants"
	apperrors "charnet/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService() *Service {
	return NewService(characters.NewTable([]characters.Record{
		{Name: "A", Games: []string{"G1"}, Friends: []string{"B"}},
		{Name: "B", Games: []string{"G1", "G3"}, Enemies: []string{"A"}},
		{Name: "C", Games: []string{"G2"}},
		{Name: "D", Games: []string{"G3"}, Description: "Lives in G3."},
	}))
}

func TestService_Character(t *testing.T) {
	svc := newTestService()

	rec, err := svc.Character("C")
	require.NoError(t, err)
	assert.Equal(t, constants.DescriptionPlaceholder, rec.Description)

	_, err = svc.Character("Z")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestService_ShortestPath(t *testing.T) {
	svc := newTestService()

	path, err := svc.ShortestPath("A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path.Characters)
	assert.Equal(t, []string{"G1", "G3"}, path.Games)
}

func TestService_ShortestPath_NoPath(t *testing.T) {
	svc := newTestService()

	_, err := svc.ShortestPath("A", "C")
	require.Error(t, err)
	assert.True(t, apperrors.IsNoPath(err))
	assert.False(t, apperrors.IsNotFound(err))

	_, err = svc.ShortestPath("A", "Nobody")
	assert.True(t, apperrors.IsNoPath(err))
}

func TestService_ShortestPath_LogsUnknownEndpoint(t *testing.T) {
	svc := newTestService()
	core, logs := observer.New(zapcore.DebugLevel)
	svc.logger = zap.New(core)

	_, err := svc.ShortestPath("A", "Nobody")
	require.True(t, apperrors.IsNoPath(err))

	entries := logs.FilterMessage("No path between characters").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, true, fields["from_known"])
	assert.Equal(t, false, fields["to_known"])
	assert.Equal(t, int64(4), fields["graph_nodes"])
}

func TestService_Related(t *testing.T) {
	svc := newTestService()

	results, err := svc.Related("A")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "B", results[0].Name)

	_, err = svc.Related("Nobody")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestService_Connectivity(t *testing.T) {
	svc := newTestService()

	best, err := svc.MostConnected()
	require.NoError(t, err)
	assert.Equal(t, "B", best.Name)
	assert.Equal(t, 2, best.Connections)

	assert.Len(t, svc.Connections(), 4)
	assert.Equal(t, []string{"A", "B", "C", "D"}, svc.Names())
}
