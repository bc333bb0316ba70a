package characters

import (
	"testing"

	"charnet/backend/internal/constants"
	apperrors "charnet/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable_FillsDescriptionAndCopies(t *testing.T) {
	games := []string{"Super Mario Bros."}
	table := NewTable([]Record{
		{Name: "Mario", Games: games},
		{Name: "Luigi", Description: "Taller brother."},
	})
	games[0] = "changed"

	require.Equal(t, 2, table.Len())
	mario := table.At(0)
	assert.Equal(t, constants.DescriptionPlaceholder, mario.Description)
	assert.Equal(t, []string{"Super Mario Bros."}, mario.Games)
	assert.Equal(t, []string{}, mario.Friends)
	assert.Equal(t, "Taller brother.", table.At(1).Description)
}

func TestLookup_FirstMatchWins(t *testing.T) {
	table := NewTable([]Record{
		{Name: "Link", Description: "first"},
		{Name: "Link", Description: "second"},
	})

	rec, err := table.Lookup("Link")
	require.NoError(t, err)
	assert.Equal(t, "first", rec.Description)
}

func TestLookup_NotFound(t *testing.T) {
	table := NewTable([]Record{{Name: "Link"}})

	_, err := table.Lookup("Zelda")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRecordMembership(t *testing.T) {
	rec := Record{
		Name:    "Wario",
		Games:   []string{"WarioWare"},
		Friends: []string{"Waluigi"},
		Enemies: []string{"Mario"},
	}

	assert.True(t, rec.ListsFriend("Waluigi"))
	assert.True(t, rec.ListsEnemy("Mario"))
	assert.False(t, rec.ListsEnemy("Waluigi"))
}

func TestConcatAndNames(t *testing.T) {
	first := NewTable([]Record{{Name: "A"}, {Name: "B"}})
	second := NewTable([]Record{{Name: "C"}})

	joined := Concat(first, nil, second)
	assert.Equal(t, []string{"A", "B", "C"}, joined.Names())

	var empty *Table
	assert.Equal(t, 0, empty.Len())
	assert.Empty(t, empty.Names())
}
