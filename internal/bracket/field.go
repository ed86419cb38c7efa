package bracket

import (
	"fmt"
	"sort"

	"github.com/tefirman/dancing/internal/team"
)

// Region identifies a tournament region
type Region string

const (
	East    Region = "East"
	West    Region = "West"
	South   Region = "South"
	Midwest Region = "Midwest"
)

// Regions lists the four tournament regions in bracket order
var Regions = []Region{East, West, South, Midwest}

// FieldSize is the number of teams in the tournament field
const FieldSize = 64

// Team is a tournament entrant: a standings team placed on a seed line
// within a region
type Team struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Conference string  `json:"conference"`
	Rating     float64 `json:"rating"`
	Seed       int     `json:"seed"`
	Region     Region  `json:"region"`
}

// Field is a seeded 64-team tournament field
type Field []*Team

// FieldFromStandings selects the top 64 teams by rating and seeds them
// onto an S-curve: the four best teams take the 1-seeds in region order,
// the next four take the 2-seeds in reverse order, and so on, keeping
// region strength balanced.
func FieldFromStandings(teams []*team.Team) (Field, error) {
	if len(teams) < FieldSize {
		return nil, fmt.Errorf("need at least %d teams for a field, got %d", FieldSize, len(teams))
	}

	ranked := make([]*team.Team, len(teams))
	copy(ranked, teams)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Name < ranked[j].Name
	})

	field := make(Field, 0, FieldSize)
	for i, tm := range ranked[:FieldSize] {
		seed := i/len(Regions) + 1

		// S-curve: reverse region order on every other seed line
		pos := i % len(Regions)
		if (i/len(Regions))%2 == 1 {
			pos = len(Regions) - 1 - pos
		}

		field = append(field, &Team{
			ID:         tm.ID,
			Name:       tm.Name,
			Conference: tm.Conference,
			Rating:     tm.Rating,
			Seed:       seed,
			Region:     Regions[pos],
		})
	}

	return field, nil
}

// Validate checks that the field holds exactly one team per seed line
// in every region
func (f Field) Validate() error {
	if len(f) != FieldSize {
		return fmt.Errorf("field has %d teams, expected %d", len(f), FieldSize)
	}

	seen := make(map[Region]map[int]bool)
	for _, region := range Regions {
		seen[region] = make(map[int]bool)
	}

	for _, tm := range f {
		lines, ok := seen[tm.Region]
		if !ok {
			return fmt.Errorf("team %s has unknown region %q", tm.Name, tm.Region)
		}
		if tm.Seed < 1 || tm.Seed > 16 {
			return fmt.Errorf("team %s has invalid seed %d", tm.Name, tm.Seed)
		}
		if lines[tm.Seed] {
			return fmt.Errorf("duplicate seed %d in region %s", tm.Seed, tm.Region)
		}
		lines[tm.Seed] = true
	}

	return nil
}

// RegionTeams returns a region's teams ordered by the given seed order
func (f Field) RegionTeams(region Region, seedOrder []int) []*Team {
	bySeed := make(map[int]*Team, 16)
	for _, tm := range f {
		if tm.Region == region {
			bySeed[tm.Seed] = tm
		}
	}

	ordered := make([]*Team, 0, len(seedOrder))
	for _, seed := range seedOrder {
		if tm, ok := bySeed[seed]; ok {
			ordered = append(ordered, tm)
		}
	}
	return ordered
}

// Find returns the field team with the given ID, nil if absent
func (f Field) Find(id string) *Team {
	for _, tm := range f {
		if tm.ID == id {
			return tm
		}
	}
	return nil
}
