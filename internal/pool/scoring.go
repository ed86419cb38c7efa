package pool

import (
	"github.com/tefirman/dancing/internal/bracket"
)

// Scoring defines how entries earn points for correct picks
type Scoring struct {
	// RoundPoints awards points per correct advancement out of a round
	RoundPoints map[bracket.Round]int `json:"round_points"`
	// SeedBonus adds the picked team's seed number to every correct
	// pick, rewarding called upsets
	SeedBonus bool `json:"seed_bonus"`
}

// DefaultScoring returns the standard 10-20-40-80-160-320 rule set
func DefaultScoring() *Scoring {
	return &Scoring{
		RoundPoints: map[bracket.Round]int{
			bracket.FirstRound:   10,
			bracket.SecondRound:  20,
			bracket.Sweet16:      40,
			bracket.Elite8:       80,
			bracket.FinalFour:    160,
			bracket.Championship: 320,
		},
	}
}

// Score computes an entry's points for one actual outcome. A pick is
// correct when the entry advanced a team out of a round and the actual
// outcome advanced the same team.
func (s *Scoring) Score(picks, outcome *bracket.Results) int {
	total := 0

	for _, round := range bracket.RoundOrder {
		points := s.RoundPoints[round]
		if points == 0 {
			continue
		}

		actual := roundWinners(outcome, round)
		for id, tm := range roundWinners(picks, round) {
			if _, ok := actual[id]; !ok {
				continue
			}
			total += points
			if s.SeedBonus {
				total += tm.Seed
			}
		}
	}

	return total
}

// roundWinners returns the teams that advanced out of a round, keyed by ID
func roundWinners(results *bracket.Results, round bracket.Round) map[string]*bracket.Team {
	winners := make(map[string]*bracket.Team)

	if round == bracket.Championship {
		if results.Champion != nil {
			winners[results.Champion.ID] = results.Champion
		}
		return winners
	}

	next := bracket.RoundOrder[bracket.RoundIndex(round)+1]
	for _, tm := range results.Rounds[next] {
		winners[tm.ID] = tm
	}
	return winners
}
