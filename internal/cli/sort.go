package cli

import (
	"sort"
	"strings"

	"github.com/tefirman/dancing/internal/team"
)

// SortOrder represents the available standings sorting options
type SortOrder string

const (
	SortByRank       SortOrder = "rank"
	SortByRating     SortOrder = "rating"
	SortByName       SortOrder = "name"
	SortByConference SortOrder = "conference"
)

func (o SortOrder) valid() bool {
	switch o {
	case SortByRank, SortByRating, SortByName, SortByConference:
		return true
	}
	return false
}

// sortTeams sorts a slice of teams based on the specified sort order
func sortTeams(teams []*team.Team, sortOrder SortOrder) {
	switch sortOrder {
	case SortByRank:
		sort.Slice(teams, func(i, j int) bool {
			return teams[i].Rank < teams[j].Rank
		})
	case SortByRating:
		sort.Slice(teams, func(i, j int) bool {
			if teams[i].Rating != teams[j].Rating {
				return teams[i].Rating > teams[j].Rating
			}
			return teams[i].Rank < teams[j].Rank
		})
	case SortByName:
		sort.Slice(teams, func(i, j int) bool {
			return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
		})
	case SortByConference:
		sort.Slice(teams, func(i, j int) bool {
			if teams[i].Conference != teams[j].Conference {
				return teams[i].Conference < teams[j].Conference
			}
			// Within a conference, best rating first
			return teams[i].Rating > teams[j].Rating
		})
	}
}
