package characters

import (
	"iter"
	"slices"

	"charnet/backend/internal/constants"
	apperrors "charnet/backend/pkg/errors"
)

// Record is one character of the dataset
type Record struct {
	Name        string   `json:"name"`
	Games       []string `json:"games"`
	Friends     []string `json:"friends"`
	Enemies     []string `json:"enemies"`
	Locations   []string `json:"locations"`
	Concepts    []string `json:"concepts"`
	Objects     []string `json:"objects"`
	Description string   `json:"description"`
}

// ListsFriend reports whether name is in the character's friends
func (r Record) ListsFriend(name string) bool {
	return slices.Contains(r.Friends, name)
}

// ListsEnemy reports whether name is in the character's enemies
func (r Record) ListsEnemy(name string) bool {
	return slices.Contains(r.Enemies, name)
}

// Table is an ordered, read-only collection of records. Order is the
// source order and drives every tie-break in the query engine.
type Table struct {
	records []Record
}

// NewTable copies records into a table. Empty descriptions get the placeholder.
func NewTable(records []Record) *Table {
	owned := make([]Record, len(records))
	for i, rec := range records {
		owned[i] = Record{
			Name:        rec.Name,
			Games:       cloneList(rec.Games),
			Friends:     cloneList(rec.Friends),
			Enemies:     cloneList(rec.Enemies),
			Locations:   cloneList(rec.Locations),
			Concepts:    cloneList(rec.Concepts),
			Objects:     cloneList(rec.Objects),
			Description: rec.Description,
		}
		if owned[i].Description == "" {
			owned[i].Description = constants.DescriptionPlaceholder
		}
	}
	return &Table{records: owned}
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns the record at position i
func (t *Table) At(i int) Record {
	return t.records[i]
}

// All iterates records in table order
func (t *Table) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i := 0; i < t.Len(); i++ {
			if !yield(i, t.records[i]) {
				return
			}
		}
	}
}

// Names returns every character name in table order
func (t *Table) Names() []string {
	names := make([]string, 0, t.Len())
	for _, rec := range t.All() {
		names = append(names, rec.Name)
	}
	return names
}

// Lookup returns the first record named name
func (t *Table) Lookup(name string) (Record, error) {
	for _, rec := range t.All() {
		if rec.Name == name {
			return rec, nil
		}
	}
	return Record{}, apperrors.NewCharacterNotFound(name)
}

// Concat joins tables in order
func Concat(tables ...*Table) *Table {
	var records []Record
	for _, t := range tables {
		if t != nil {
			records = append(records, t.records...)
		}
	}
	return &Table{records: records}
}

func cloneList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
