package team

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Snapshot represents the scraped standings at a point in time
type Snapshot struct {
	Teams     map[string]*Team `json:"teams"`      // keyed by Team.ID
	ChangeLog []*TeamChange    `json:"change_log"` // Recent changes
	UpdatedAt string           `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Teams:     make(map[string]*Team),
		ChangeLog: make([]*TeamChange, 0),
	}
}

// CreateSnapshot creates a snapshot from a list of teams
func CreateSnapshot(teams []*Team, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt

	for _, tm := range teams {
		snap.Teams[tm.ID] = tm
	}

	return snap
}

// DiffResult contains the results of comparing standings against a snapshot
type DiffResult struct {
	NewTeams    []*Team
	Conferences map[string][]*Team // new teams grouped by conference
}

// Diff compares current teams against a previous snapshot and returns teams
// that were not present in the previous scrape
func Diff(previous *Snapshot, current []*Team, confFilter string) *DiffResult {
	result := &DiffResult{
		NewTeams:    make([]*Team, 0),
		Conferences: make(map[string][]*Team),
	}

	if previous == nil {
		previous = NewSnapshot()
	}

	for _, tm := range current {
		if confFilter != "" && !strings.EqualFold(confFilter, "ALL") {
			if !strings.EqualFold(tm.Conference, confFilter) {
				continue
			}
		}

		if _, exists := previous.Teams[tm.ID]; !exists {
			result.NewTeams = append(result.NewTeams, tm)

			if result.Conferences[tm.Conference] == nil {
				result.Conferences[tm.Conference] = make([]*Team, 0)
			}
			result.Conferences[tm.Conference] = append(result.Conferences[tm.Conference], tm)
		}
	}

	// Sort new teams for consistent output
	sort.Slice(result.NewTeams, func(i, j int) bool {
		if result.NewTeams[i].Conference != result.NewTeams[j].Conference {
			return result.NewTeams[i].Conference < result.NewTeams[j].Conference
		}
		return result.NewTeams[i].Name < result.NewTeams[j].Name
	})

	for conf := range result.Conferences {
		sort.Slice(result.Conferences[conf], func(i, j int) bool {
			return result.Conferences[conf][i].Name < result.Conferences[conf][j].Name
		})
	}

	return result
}

// TeamChange represents a change detected in a team between scrapes
type TeamChange struct {
	TeamID     string    `json:"team_id"`
	Name       string    `json:"name"`
	ChangeType string    `json:"change_type"` // "rating", "record", "rank", "new"
	OldValue   string    `json:"old_value"`
	NewValue   string    `json:"new_value"`
	DetectedAt time.Time `json:"detected_at"`
}

// DetectChanges compares two versions of a team and returns detected changes
func DetectChanges(previous, current *Team) []*TeamChange {
	// If no previous team, this team just entered the standings
	if previous == nil {
		return []*TeamChange{
			{
				TeamID:     current.ID,
				Name:       current.Name,
				ChangeType: "new",
				OldValue:   "",
				NewValue:   current.Name,
				DetectedAt: time.Now().UTC(),
			},
		}
	}

	var changes []*TeamChange

	if previous.Rating != current.Rating {
		changes = append(changes, &TeamChange{
			TeamID:     current.ID,
			Name:       current.Name,
			ChangeType: "rating",
			OldValue:   fmt.Sprintf("%.2f", previous.Rating),
			NewValue:   fmt.Sprintf("%.2f", current.Rating),
			DetectedAt: time.Now().UTC(),
		})
	}

	if previous.Wins != current.Wins || previous.Losses != current.Losses {
		changes = append(changes, &TeamChange{
			TeamID:     current.ID,
			Name:       current.Name,
			ChangeType: "record",
			OldValue:   previous.Record(),
			NewValue:   current.Record(),
			DetectedAt: time.Now().UTC(),
		})
	}

	if previous.Rank != current.Rank {
		changes = append(changes, &TeamChange{
			TeamID:     current.ID,
			Name:       current.Name,
			ChangeType: "rank",
			OldValue:   fmt.Sprintf("%d", previous.Rank),
			NewValue:   fmt.Sprintf("%d", current.Rank),
			DetectedAt: time.Now().UTC(),
		})
	}

	return changes
}

// CompareSnapshots compares two snapshots and returns all detected changes
func CompareSnapshots(previous, current *Snapshot) []*TeamChange {
	var allChanges []*TeamChange

	if previous == nil {
		previous = NewSnapshot()
	}

	// Stable iteration order for deterministic change logs
	ids := make([]string, 0, len(current.Teams))
	for id := range current.Teams {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		currentTeam := current.Teams[id]
		if previousTeam, exists := previous.Teams[id]; exists {
			allChanges = append(allChanges, DetectChanges(previousTeam, currentTeam)...)
		} else {
			allChanges = append(allChanges, DetectChanges(nil, currentTeam)...)
		}
	}

	return allChanges
}
