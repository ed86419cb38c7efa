package filter

import (
	"testing"

	"github.com/tefirman/dancing/internal/team"
)

func sampleTeams() []*team.Team {
	return []*team.Team{
		team.New("UConn", "Big East", 1744.5, 28, 3, 1),
		team.New("Houston", "Big 12", 1731.2, 30, 2, 2),
		team.New("Auburn", "SEC", 1689.9, 27, 5, 4),
		team.New("Tennessee", "SEC", 1662.1, 24, 7, 6),
		team.New("Drake", "MVC", 1610.0, 18, 13, 25),
	}
}

func TestEmptyFilterMatchesAll(t *testing.T) {
	f := New()
	if !f.IsEmpty() {
		t.Error("new filter should be empty")
	}

	teams := sampleTeams()
	if got := f.Apply(teams); len(got) != len(teams) {
		t.Errorf("empty filter should match all %d teams, got %d", len(teams), len(got))
	}
}

func TestFilterCriteria(t *testing.T) {
	teams := sampleTeams()

	tests := []struct {
		name      string
		filter    *Filter
		wantNames []string
	}{
		{
			name:      "single conference",
			filter:    &Filter{Conferences: []string{"SEC"}},
			wantNames: []string{"Auburn", "Tennessee"},
		},
		{
			name:      "conference case-insensitive",
			filter:    &Filter{Conferences: []string{"sec"}},
			wantNames: []string{"Auburn", "Tennessee"},
		},
		{
			name:      "multiple conferences OR together",
			filter:    &Filter{Conferences: []string{"Big East", "MVC"}},
			wantNames: []string{"UConn", "Drake"},
		},
		{
			name:      "rating range",
			filter:    &Filter{MinRating: 1660, MaxRating: 1700},
			wantNames: []string{"Auburn", "Tennessee"},
		},
		{
			name:      "min rating only",
			filter:    &Filter{MinRating: 1700},
			wantNames: []string{"UConn", "Houston"},
		},
		{
			name:      "rank range",
			filter:    &Filter{MinRank: 2, MaxRank: 6},
			wantNames: []string{"Houston", "Auburn", "Tennessee"},
		},
		{
			name:      "min wins",
			filter:    &Filter{MinWins: 27},
			wantNames: []string{"UConn", "Houston", "Auburn"},
		},
		{
			name:      "combined criteria",
			filter:    &Filter{Conferences: []string{"SEC"}, MinWins: 26},
			wantNames: []string{"Auburn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(teams)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("expected %d teams, got %d", len(tt.wantNames), len(got))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("position %d: expected %q, got %q", i, name, got[i].Name)
				}
			}
		})
	}
}
