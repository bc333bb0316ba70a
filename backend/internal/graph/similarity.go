package graph

import (
	"slices"

	"charnet/backend/internal/characters"
	"charnet/backend/internal/constants"
)

// Similarity scores one candidate against a query character
type Similarity struct {
	Name            string  `json:"name"`
	Score           float64 `json:"score"`
	IsFriend        bool    `json:"is_friend"`
	IsEnemy         bool    `json:"is_enemy"`
	SharedGames     int     `json:"shared_games"`
	SharedFriends   int     `json:"shared_friends"`
	SharedEnemies   int     `json:"shared_enemies"`
	SharedLocations int     `json:"shared_locations"`
}

// FindRelated ranks every other character by weighted overlap with name and
// returns the top constants.RelatedLimit, highest score first. Ties keep
// table order. The friend/enemy bonus only looks at the candidate's lists.
func FindRelated(name string, table *characters.Table) ([]Similarity, error) {
	query, err := table.Lookup(name)
	if err != nil {
		return nil, err
	}

	scored := make([]Similarity, 0, table.Len())
	for _, rec := range table.All() {
		if rec.Name == name {
			continue
		}
		scored = append(scored, score(query, rec))
	}

	slices.SortStableFunc(scored, func(a, b Similarity) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})

	if len(scored) > constants.RelatedLimit {
		scored = scored[:constants.RelatedLimit]
	}
	return scored, nil
}

func score(query, candidate characters.Record) Similarity {
	s := Similarity{
		Name:            candidate.Name,
		IsFriend:        candidate.ListsFriend(query.Name),
		IsEnemy:         candidate.ListsEnemy(query.Name),
		SharedGames:     overlap(query.Games, candidate.Games),
		SharedFriends:   overlap(query.Friends, candidate.Friends),
		SharedEnemies:   overlap(query.Enemies, candidate.Enemies),
		SharedLocations: overlap(query.Locations, candidate.Locations),
	}

	s.Score = constants.WeightSharedGame*float64(s.SharedGames) +
		constants.WeightSharedFriend*float64(s.SharedFriends) +
		constants.WeightSharedEnemy*float64(s.SharedEnemies) +
		constants.WeightSharedLocation*float64(s.SharedLocations)
	if s.IsFriend {
		s.Score += constants.BonusListedAsFriend
	}
	if s.IsEnemy {
		s.Score += constants.BonusListedAsEnemy
	}
	return s
}

// overlap is the size of the set intersection of a and b
func overlap(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, item := range a {
		set[item] = struct{}{}
	}
	count := 0
	for _, item := range b {
		if _, ok := set[item]; ok {
			count++
			delete(set, item)
		}
	}
	return count
}
