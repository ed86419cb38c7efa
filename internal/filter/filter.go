// Package filter provides standings filtering for the dancing CLI.
//
// Filters narrow scraped standings based on various criteria:
//   - Conferences (case-insensitive exact match)
//   - Rating ranges (ELO)
//   - Rank ranges (standings position)
//   - Minimum wins
//
// Filters are usually built from a query string, e.g.
// "conf:SEC rating:>1600 rank:1-50"; see Parse.
package filter

import (
	"strings"

	"github.com/tefirman/dancing/internal/team"
)

// Filter represents standings filtering criteria. Zero-valued criteria
// are inactive; an empty filter matches every team.
type Filter struct {
	// Conference filtering (case-insensitive match)
	Conferences []string `json:"conferences,omitempty"`

	// ELO rating bounds, inclusive; 0 disables a bound
	MinRating float64 `json:"min_rating,omitempty"`
	MaxRating float64 `json:"max_rating,omitempty"`

	// Standings rank bounds, inclusive; 0 disables a bound
	MinRank int `json:"min_rank,omitempty"`
	MaxRank int `json:"max_rank,omitempty"`

	// Minimum wins; 0 disables
	MinWins int `json:"min_wins,omitempty"`
}

// New creates a new empty filter with no active criteria
func New() *Filter {
	return &Filter{
		Conferences: []string{},
	}
}

// Match reports whether a team satisfies every active criterion
func (f *Filter) Match(tm *team.Team) bool {
	if len(f.Conferences) > 0 {
		matched := false
		for _, conf := range f.Conferences {
			if strings.EqualFold(conf, tm.Conference) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.MinRating > 0 && tm.Rating < f.MinRating {
		return false
	}
	if f.MaxRating > 0 && tm.Rating > f.MaxRating {
		return false
	}

	if f.MinRank > 0 && tm.Rank < f.MinRank {
		return false
	}
	if f.MaxRank > 0 && tm.Rank > f.MaxRank {
		return false
	}

	if f.MinWins > 0 && tm.Wins < f.MinWins {
		return false
	}

	return true
}

// Apply returns the teams matching the filter, preserving order
func (f *Filter) Apply(teams []*team.Team) []*team.Team {
	matched := make([]*team.Team, 0, len(teams))
	for _, tm := range teams {
		if f.Match(tm) {
			matched = append(matched, tm)
		}
	}
	return matched
}

// IsEmpty reports whether the filter has no active criteria
func (f *Filter) IsEmpty() bool {
	return len(f.Conferences) == 0 &&
		f.MinRating == 0 && f.MaxRating == 0 &&
		f.MinRank == 0 && f.MaxRank == 0 &&
		f.MinWins == 0
}
