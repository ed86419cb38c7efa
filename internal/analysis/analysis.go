package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/tefirman/dancing/internal/bracket"
	"github.com/tefirman/dancing/internal/logger"
	"github.com/tefirman/dancing/internal/pool"
)

// Analysis runs many bracket pools and aggregates trends across the
// brackets that won them
type Analysis struct {
	Field    bracket.Field
	NumPools int
	Scoring  *pool.Scoring

	rng *rand.Rand

	// winners holds the winning entry of each simulated pool
	winners []*pool.Entry
}

// New creates an analysis over a seeded field. A nil rng gets a
// time-seeded source; a nil scoring gets the default rule set.
func New(field bracket.Field, numPools int, scoring *pool.Scoring, rng *rand.Rand) (*Analysis, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	if numPools <= 0 {
		return nil, fmt.Errorf("numPools must be positive, got %d", numPools)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if scoring == nil {
		scoring = pool.DefaultScoring()
	}
	return &Analysis{
		Field:    field,
		NumPools: numPools,
		Scoring:  scoring,
		rng:      rng,
	}, nil
}

// SimulatePools runs every pool: each gets entriesPerPool entries with
// upset factors spread across 0.1..0.4, simulated simsPerPool times, and
// the winning entry is retained for trend analysis.
func (a *Analysis) SimulatePools(entriesPerPool, simsPerPool int) error {
	if entriesPerPool <= 0 {
		return fmt.Errorf("entriesPerPool must be positive, got %d", entriesPerPool)
	}
	if simsPerPool <= 0 {
		return fmt.Errorf("simsPerPool must be positive, got %d", simsPerPool)
	}

	logger.Info("Beginning pool simulation", logger.Fields{
		"pools":   a.NumPools,
		"entries": entriesPerPool,
		"sims":    simsPerPool,
	})
	started := time.Now()

	a.winners = make([]*pool.Entry, 0, a.NumPools)

	for i := 0; i < a.NumPools; i++ {
		if (i+1)%100 == 0 {
			logger.Info("Simulation progress", logger.Fields{
				"completed": i + 1,
				"total":     a.NumPools,
			})
		}

		actual, err := bracket.New(a.Field, 0, a.rng)
		if err != nil {
			return fmt.Errorf("building actual bracket: %w", err)
		}
		p := pool.New(actual, a.Scoring)

		for j := 0; j < entriesPerPool; j++ {
			factor := 0.1 + (float64(j)/float64(entriesPerPool))*0.3
			entry, err := bracket.New(a.Field, factor, a.rng)
			if err != nil {
				return fmt.Errorf("building entry bracket: %w", err)
			}
			name := fmt.Sprintf("Entry_%d", j+1)
			if err := p.AddEntry(name, entry); err != nil {
				return fmt.Errorf("adding entry: %w", err)
			}
		}

		standings, err := p.Simulate(simsPerPool)
		if err != nil {
			return fmt.Errorf("simulating pool %d: %w", i, err)
		}

		winner := p.Winner(standings)
		if winner == nil {
			return fmt.Errorf("pool %d produced no winner", i)
		}
		a.winners = append(a.winners, winner)

		logger.IncrCounter("analysis.pools_simulated")
	}

	logger.RecordTiming("analysis.simulate_pools", time.Since(started))
	return nil
}

// RoundUpsetStats summarizes upset counts for one round across winning
// brackets
type RoundUpsetStats struct {
	Round bracket.Round `json:"round"`
	Avg   float64       `json:"avg_upsets"`
	Std   float64       `json:"std_upsets"`
	Min   int           `json:"min_upsets"`
	Max   int           `json:"max_upsets"`
}

// UpsetStats analyzes upset patterns in winning brackets, ordered
// chronologically by round
func (a *Analysis) UpsetStats() ([]*RoundUpsetStats, error) {
	if len(a.winners) == 0 {
		return nil, fmt.Errorf("no simulated pools; run SimulatePools first")
	}

	counts := make(map[bracket.Round][]int)
	for _, w := range a.winners {
		byRound := w.Bracket.UpsetsByRound()
		for _, round := range bracket.RoundOrder {
			counts[round] = append(counts[round], byRound[round])
		}
	}

	stats := make([]*RoundUpsetStats, 0, len(bracket.RoundOrder))
	for _, round := range bracket.RoundOrder {
		samples := counts[round]

		min, max := samples[0], samples[0]
		sum := 0
		for _, c := range samples {
			sum += c
			if c < min {
				min = c
			}
			if c > max {
				max = c
			}
		}
		avg := float64(sum) / float64(len(samples))

		var variance float64
		for _, c := range samples {
			variance += (float64(c) - avg) * (float64(c) - avg)
		}
		var std float64
		if len(samples) > 1 {
			// Sample standard deviation
			std = math.Sqrt(variance / float64(len(samples)-1))
		}

		stats = append(stats, &RoundUpsetStats{
			Round: round,
			Avg:   avg,
			Std:   std,
			Min:   min,
			Max:   max,
		})
	}

	return stats, nil
}

// Underdog is a team reaching a round beyond its seed expectation,
// with the frequency of that run across winning brackets
type Underdog struct {
	MakeItTo  bracket.Round `json:"make_it_to"`
	Seed      int           `json:"seed"`
	Team      string        `json:"team"`
	Frequency float64       `json:"frequency"`
}

// CommonUnderdogs identifies the most common upset teams by round, where
// an upset is a team advancing further than its seed traditionally would
// (seeds 1-8 reach the second round, 1-4 the Sweet 16, and so on).
// Results are ordered by round, then by frequency within each round.
func (a *Analysis) CommonUnderdogs() ([]*Underdog, error) {
	if len(a.winners) == 0 {
		return nil, fmt.Errorf("no simulated pools; run SimulatePools first")
	}

	type key struct {
		round bracket.Round
		seed  int
		name  string
	}
	counts := make(map[key]int)

	for _, w := range a.winners {
		for round, teams := range w.Picks.Rounds {
			expectedMax := bracket.ExpectedMaxSeeds[round]
			for _, tm := range teams {
				if tm.Seed > expectedMax {
					counts[key{round, tm.Seed, tm.Name}]++
				}
			}
		}
	}

	underdogs := make([]*Underdog, 0, len(counts))
	for k, count := range counts {
		underdogs = append(underdogs, &Underdog{
			MakeItTo:  k.round,
			Seed:      k.seed,
			Team:      k.name,
			Frequency: float64(count) / float64(len(a.winners)),
		})
	}

	sort.Slice(underdogs, func(i, j int) bool {
		oi, oj := bracket.RoundIndex(underdogs[i].MakeItTo), bracket.RoundIndex(underdogs[j].MakeItTo)
		if oi != oj {
			return oi < oj
		}
		if underdogs[i].Frequency != underdogs[j].Frequency {
			return underdogs[i].Frequency > underdogs[j].Frequency
		}
		if underdogs[i].Seed != underdogs[j].Seed {
			return underdogs[i].Seed < underdogs[j].Seed
		}
		return underdogs[i].Team < underdogs[j].Team
	})

	return underdogs, nil
}

// ChampionPick is a champion chosen by winning brackets and how often
type ChampionPick struct {
	Seed       int     `json:"seed"`
	Team       string  `json:"team"`
	Conference string  `json:"conference"`
	Frequency  float64 `json:"frequency"`
}

// ChampionPicks analyzes championship picks in winning brackets,
// sorted by frequency descending
func (a *Analysis) ChampionPicks() ([]*ChampionPick, error) {
	if len(a.winners) == 0 {
		return nil, fmt.Errorf("no simulated pools; run SimulatePools first")
	}

	type key struct {
		seed int
		name string
		conf string
	}
	counts := make(map[key]int)

	for _, w := range a.winners {
		champ := w.Picks.Champion
		counts[key{champ.Seed, champ.Name, champ.Conference}]++
	}

	picks := make([]*ChampionPick, 0, len(counts))
	for k, count := range counts {
		picks = append(picks, &ChampionPick{
			Seed:       k.seed,
			Team:       k.name,
			Conference: k.conf,
			Frequency:  float64(count) / float64(len(a.winners)),
		})
	}

	sort.Slice(picks, func(i, j int) bool {
		if picks[i].Frequency != picks[j].Frequency {
			return picks[i].Frequency > picks[j].Frequency
		}
		return picks[i].Team < picks[j].Team
	})

	return picks, nil
}
