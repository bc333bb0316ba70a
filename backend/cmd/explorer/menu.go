package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"charnet/backend/internal/characters"
	"charnet/backend/internal/constants"
	"charnet/backend/internal/explorer"
	"charnet/backend/internal/graph"
	apperrors "charnet/backend/pkg/errors"
)

// menu drives the explorer over a line-oriented reader and writer
type menu struct {
	svc *explorer.Service
	in  *bufio.Scanner
	out io.Writer
}

func newMenu(svc *explorer.Service, in io.Reader, out io.Writer) *menu {
	return &menu{svc: svc, in: bufio.NewScanner(in), out: out}
}

// run shows the menu until the user quits or input ends
func (m *menu) run() {
	for {
		fmt.Fprintln(m.out, "Choose an option:")
		fmt.Fprintln(m.out, "1. View character information")
		fmt.Fprintln(m.out, "2. View the shortest path between two characters")
		fmt.Fprintln(m.out, "3. View the most closely related characters for a given character")
		fmt.Fprintln(m.out, "4. View the most connected character in the dataset")
		fmt.Fprintln(m.out, "q. Quit")

		choice, ok := m.prompt("Enter your choice (1-4, q): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			if name, ok := m.prompt("Enter the character's name: "); ok {
				m.showCharacter(name)
			}
		case "2":
			from, ok := m.prompt("Enter the name of the first character: ")
			if !ok {
				return
			}
			if to, ok := m.prompt("Enter the name of the second character: "); ok {
				m.showPath(from, to)
			}
		case "3":
			if name, ok := m.prompt("Enter the character's name: "); ok {
				m.showRelated(name)
			}
		case "4":
			m.showMostConnected()
		case "q", "quit", "exit":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		fmt.Fprintln(m.out)
	}
}

func (m *menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *menu) showCharacter(name string) {
	rec, err := m.svc.Character(name)
	if err != nil {
		m.showError(err)
		return
	}
	fmt.Fprint(m.out, formatCharacter(rec))
}

func (m *menu) showPath(from, to string) {
	path, err := m.svc.ShortestPath(from, to)
	if err != nil {
		m.showError(err)
		return
	}
	fmt.Fprint(m.out, formatPath(from, to, path))
}

func (m *menu) showRelated(name string) {
	related, err := m.svc.Related(name)
	if err != nil {
		m.showError(err)
		return
	}
	fmt.Fprint(m.out, formatRelated(related))
}

func (m *menu) showMostConnected() {
	best, err := m.svc.MostConnected()
	if err != nil {
		m.showError(err)
		return
	}
	fmt.Fprintf(m.out, "The most connected character in the dataset is %s with %d direct connections.\n",
		best.Name, best.Connections)
}

func (m *menu) showError(err error) {
	var noPath *apperrors.ErrNoPath
	var notFound *apperrors.ErrCharacterNotFound
	switch {
	case errors.As(err, &noPath):
		fmt.Fprintf(m.out, "No path found between %s and %s.\n", noPath.From, noPath.To)
	case errors.As(err, &notFound):
		fmt.Fprintf(m.out, "Character '%s' not found in the dataset.\n", notFound.Name)
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func formatCharacter(rec characters.Record) string {
	locations := strings.Join(rec.Locations, ", ")
	if len(rec.Locations) == 0 {
		locations = constants.NoLocationsText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", rec.Name)
	fmt.Fprintf(&b, "Description: %s\n", rec.Description)
	fmt.Fprintf(&b, "Games: %s\n", strings.Join(rec.Games, ", "))
	fmt.Fprintf(&b, "Friends: %s\n", strings.Join(rec.Friends, ", "))
	fmt.Fprintf(&b, "Enemies: %s\n", strings.Join(rec.Enemies, ", "))
	fmt.Fprintf(&b, "Locations: %s\n", locations)
	return b.String()
}

func formatPath(from, to string, path *graph.Path) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shortest path from %s to %s:\n", from, to)
	for _, hop := range path.Hops() {
		fmt.Fprintf(&b, "%s -> [%s] -> %s\n", hop.From, hop.Game, hop.To)
	}
	return b.String()
}

func formatRelated(related []graph.Similarity) string {
	var b strings.Builder
	for _, r := range related {
		fmt.Fprintf(&b, "Character: %s, Similarity Score: %g\n", r.Name, r.Score)
		fmt.Fprintf(&b, "  Friend: %t, Enemy: %t\n", r.IsFriend, r.IsEnemy)
		fmt.Fprintf(&b, "  Shared Games: %d, Shared Friends: %d, Shared Enemies: %d, Shared Locations: %d\n",
			r.SharedGames, r.SharedFriends, r.SharedEnemies, r.SharedLocations)
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}
	return b.String()
}
