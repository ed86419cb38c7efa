package pool

import (
	"fmt"
	"sort"

	"github.com/tefirman/dancing/internal/bracket"
)

// Entry is a pool participant: a named bracket whose picks are locked in
// when the entry joins the pool
type Entry struct {
	Name    string           `json:"name"`
	Bracket *bracket.Bracket `json:"-"`
	Picks   *bracket.Results `json:"picks"`
}

// Standing is one row of simulated pool standings
type Standing struct {
	Name     string  `json:"name"`
	Wins     float64 `json:"wins"` // pool wins across sims, ties split
	WinPct   float64 `json:"win_pct"`
	AvgScore float64 `json:"avg_score"`
	MaxScore int     `json:"max_score"`
}

// Pool is a bracket pool: fixed entries scored against repeated playouts
// of the actual tournament
type Pool struct {
	Actual  *bracket.Bracket `json:"-"`
	Entries []*Entry         `json:"entries"`
	Scoring *Scoring         `json:"scoring"`
}

// New creates a pool around the actual tournament bracket.
// A nil scoring gets DefaultScoring.
func New(actual *bracket.Bracket, scoring *Scoring) *Pool {
	if scoring == nil {
		scoring = DefaultScoring()
	}
	return &Pool{
		Actual:  actual,
		Entries: make([]*Entry, 0),
		Scoring: scoring,
	}
}

// AddEntry locks in an entry's picks by playing out its bracket once.
// Duplicate entry names are rejected.
func (p *Pool) AddEntry(name string, b *bracket.Bracket) error {
	for _, e := range p.Entries {
		if e.Name == name {
			return fmt.Errorf("duplicate entry name: %s", name)
		}
	}

	p.Entries = append(p.Entries, &Entry{
		Name:    name,
		Bracket: b,
		Picks:   b.Simulate(),
	})
	return nil
}

// Simulate plays out the actual tournament numSims times and scores every
// entry against each outcome. Standings are ranked by pool wins, then
// average score; the projected pool winner sits at index 0.
func (p *Pool) Simulate(numSims int) ([]*Standing, error) {
	if numSims <= 0 {
		return nil, fmt.Errorf("numSims must be positive, got %d", numSims)
	}
	if len(p.Entries) == 0 {
		return nil, fmt.Errorf("pool has no entries")
	}

	standings := make([]*Standing, len(p.Entries))
	for i, e := range p.Entries {
		standings[i] = &Standing{Name: e.Name}
	}
	totals := make([]int, len(p.Entries))

	scores := make([]int, len(p.Entries))
	for sim := 0; sim < numSims; sim++ {
		outcome := p.Actual.Simulate()

		best := -1
		for i, e := range p.Entries {
			scores[i] = p.Scoring.Score(e.Picks, outcome)
			totals[i] += scores[i]
			if scores[i] > best {
				best = scores[i]
			}
			if scores[i] > standings[i].MaxScore {
				standings[i].MaxScore = scores[i]
			}
		}

		// Split the pool win across tied entries
		winners := 0
		for _, s := range scores {
			if s == best {
				winners++
			}
		}
		for i, s := range scores {
			if s == best {
				standings[i].Wins += 1.0 / float64(winners)
			}
		}
	}

	for i := range standings {
		standings[i].WinPct = standings[i].Wins / float64(numSims)
		standings[i].AvgScore = float64(totals[i]) / float64(numSims)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		if standings[i].AvgScore != standings[j].AvgScore {
			return standings[i].AvgScore > standings[j].AvgScore
		}
		return standings[i].Name < standings[j].Name
	})

	return standings, nil
}

// Winner returns the entry with the given standings name, nil if absent
func (p *Pool) Winner(standings []*Standing) *Entry {
	if len(standings) == 0 {
		return nil
	}
	for _, e := range p.Entries {
		if e.Name == standings[0].Name {
			return e
		}
	}
	return nil
}
