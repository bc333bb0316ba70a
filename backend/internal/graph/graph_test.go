package graph

import (
	"testing"

	"charnet/backend/internal/characters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleTable is the three-character fixture: A and B share G1, C is alone in G2.
func exampleTable() *characters.Table {
	return characters.NewTable([]characters.Record{
		{Name: "A", Games: []string{"G1"}, Friends: []string{"B"}},
		{Name: "B", Games: []string{"G1"}, Enemies: []string{"A"}},
		{Name: "C", Games: []string{"G2"}},
	})
}

// chainTable links Mario to Kirby only through Link and Pikachu.
func chainTable() *characters.Table {
	return characters.NewTable([]characters.Record{
		{Name: "Mario", Games: []string{"Mario Kart", "Smash"}},
		{Name: "Peach", Games: []string{"Mario Kart"}},
		{Name: "Link", Games: []string{"Smash", "Zelda"}},
		{Name: "Zelda", Games: []string{"Zelda"}},
		{Name: "Pikachu", Games: []string{"Pokemon", "Zelda"}},
		{Name: "Kirby", Games: []string{"Pokemon"}},
		{Name: "Tetris Block", Games: []string{"Tetris"}},
	})
}

func TestBuild_ExampleAdjacency(t *testing.T) {
	g := Build(exampleTable())

	assert.Equal(t, []string{"A", "B", "C"}, g.Characters())
	assert.Equal(t, []string{"G1"}, g.SharedGames("A", "B"))
	assert.Equal(t, []string{"G1"}, g.SharedGames("B", "A"))
	assert.True(t, g.Has("C"))
	assert.Empty(t, g.Neighbors("C"))
}

func TestBuild_NoSelfEdges(t *testing.T) {
	g := Build(chainTable())

	for _, name := range g.Characters() {
		assert.NotContains(t, g.Neighbors(name), name)
	}
}

func TestBuild_RepeatedGamesAreNotDeduplicated(t *testing.T) {
	table := characters.NewTable([]characters.Record{
		{Name: "Sonic", Games: []string{"Heroes", "Heroes", "Riders"}},
		{Name: "Tails", Games: []string{"Riders", "Heroes"}},
	})
	g := Build(table)

	assert.Equal(t, []string{"Heroes", "Heroes", "Riders"}, g.SharedGames("Sonic", "Tails"))
	assert.Equal(t, []string{"Riders", "Heroes"}, g.SharedGames("Tails", "Sonic"))
}

func TestBuild_NeighborOrderFollowsDiscovery(t *testing.T) {
	table := characters.NewTable([]characters.Record{
		{Name: "Fox", Games: []string{"Star Fox", "Smash"}},
		{Name: "Ness", Games: []string{"Smash"}},
		{Name: "Falco", Games: []string{"Star Fox", "Smash"}},
	})
	g := Build(table)

	assert.Equal(t, []string{"Falco", "Ness"}, g.Neighbors("Fox"))
	assert.Equal(t, []string{"Star Fox", "Smash"}, g.SharedGames("Fox", "Falco"))
}

func TestBuild_DuplicateNamesShareEntry(t *testing.T) {
	table := characters.NewTable([]characters.Record{
		{Name: "Toad", Games: []string{"Kart"}},
		{Name: "Toad", Games: []string{"Party"}},
		{Name: "Yoshi", Games: []string{"Kart", "Party"}},
	})
	g := Build(table)

	assert.Equal(t, []string{"Toad", "Yoshi"}, g.Characters())
	assert.Equal(t, []string{"Kart", "Party"}, g.SharedGames("Toad", "Yoshi"))
	assert.Equal(t, []string{"Kart", "Party"}, g.SharedGames("Yoshi", "Toad"))
}

func TestBuild_EmptyTable(t *testing.T) {
	g := Build(characters.NewTable(nil))

	require.NotNil(t, g)
	assert.Equal(t, 0, g.Len())
	assert.Nil(t, g.Neighbors("anyone"))
	assert.Nil(t, g.SharedGames("anyone", "else"))
}
