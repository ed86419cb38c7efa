package bracket

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Round identifies a tournament round
type Round string

const (
	FirstRound   Round = "First Round"
	SecondRound  Round = "Second Round"
	Sweet16      Round = "Sweet 16"
	Elite8       Round = "Elite 8"
	FinalFour    Round = "Final Four"
	Championship Round = "Championship"
)

// RoundOrder lists tournament rounds chronologically
var RoundOrder = []Round{
	FirstRound,
	SecondRound,
	Sweet16,
	Elite8,
	FinalFour,
	Championship,
}

// RoundIndex returns the chronological position of a round, -1 if unknown
func RoundIndex(r Round) int {
	for i, round := range RoundOrder {
		if round == r {
			return i
		}
	}
	return -1
}

// ExpectedMaxSeeds maps each round to the highest seed expected to appear
// in it when no upsets occur. A team seeded above the threshold reaching
// the round counts as an underdog run.
var ExpectedMaxSeeds = map[Round]int{
	FirstRound:   16, // No upsets possible
	SecondRound:  8,
	Sweet16:      4,
	Elite8:       2,
	FinalFour:    1,
	Championship: 1,
}

// firstRoundSeedOrder is the standard NCAA pairing order. Adjacent pairs
// play each other, and the ordering makes bracket lines collapse correctly
// (the 1-16 winner meets the 8-9 winner, and so on).
var firstRoundSeedOrder = []int{1, 16, 8, 9, 5, 12, 4, 13, 6, 11, 3, 14, 7, 10, 2, 15}

// Game represents a single tournament game
type Game struct {
	Round  Round   `json:"round"`
	Region Region  `json:"region,omitempty"` // empty for Final Four onward
	Team1  *Team   `json:"team1"`
	Team2  *Team   `json:"team2"`
	Winner *Team   `json:"winner,omitempty"`
}

// Loser returns the team that lost the game, nil if undecided
func (g *Game) Loser() *Team {
	if g.Winner == nil {
		return nil
	}
	if g.Winner == g.Team1 {
		return g.Team2
	}
	return g.Team1
}

// IsUpset reports whether the worse-seeded team won.
// Equal seeds (Final Four onward) never count as upsets.
func (g *Game) IsUpset() bool {
	loser := g.Loser()
	if loser == nil {
		return false
	}
	return g.Winner.Seed > loser.Seed
}

// Results holds the outcome of a single tournament playout.
// Rounds maps each round to the teams that played in it.
type Results struct {
	Rounds   map[Round][]*Team `json:"rounds"`
	Champion *Team             `json:"champion"`
}

// Bracket represents a 64-team tournament that can be played out repeatedly
type Bracket struct {
	Field       Field   `json:"field"`
	Games       []*Game `json:"games,omitempty"` // games of the latest playout
	UpsetFactor float64 `json:"upset_factor"`

	rng *rand.Rand
}

// New creates a bracket from a seeded field. The upset factor f in [0,1]
// blends game win probabilities toward a coin flip, making the bracket
// pick more upsets as f grows. A nil rng gets a time-seeded source.
func New(field Field, upsetFactor float64, rng *rand.Rand) (*Bracket, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}
	if upsetFactor < 0 || upsetFactor > 1 {
		return nil, fmt.Errorf("upset factor %f out of range [0,1]", upsetFactor)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Bracket{
		Field:       field,
		UpsetFactor: upsetFactor,
		rng:         rng,
	}, nil
}

// WinProbability returns the probability that a beats b under the
// logistic ELO model
func WinProbability(a, b *Team) float64 {
	return 1.0 / (1.0 + math.Pow(10, -(a.Rating-b.Rating)/400.0))
}

// adjusted blends a win probability toward 0.5 by the upset factor
func adjusted(p, factor float64) float64 {
	return p + factor*(0.5-p)
}

// Simulate plays out the full tournament once. Games and Results are
// rebuilt on every call, so a bracket can be replayed for Monte-Carlo use.
func (b *Bracket) Simulate() *Results {
	b.Games = b.Games[:0]

	results := &Results{
		Rounds: make(map[Round][]*Team),
	}

	// Regional rounds: First Round through Elite 8, one winner per region
	regionWinners := make(map[Region]*Team)
	for _, region := range Regions {
		survivors := b.Field.RegionTeams(region, firstRoundSeedOrder)

		for _, round := range RoundOrder[:4] {
			results.Rounds[round] = append(results.Rounds[round], survivors...)

			next := make([]*Team, 0, len(survivors)/2)
			for i := 0; i < len(survivors); i += 2 {
				winner := b.playGame(round, region, survivors[i], survivors[i+1])
				next = append(next, winner)
			}
			survivors = next
		}

		regionWinners[region] = survivors[0]
	}

	// Final Four: East vs West, South vs Midwest
	semifinal1 := []*Team{regionWinners[East], regionWinners[West]}
	semifinal2 := []*Team{regionWinners[South], regionWinners[Midwest]}
	results.Rounds[FinalFour] = append(semifinal1, semifinal2...)

	finalist1 := b.playGame(FinalFour, "", semifinal1[0], semifinal1[1])
	finalist2 := b.playGame(FinalFour, "", semifinal2[0], semifinal2[1])

	results.Rounds[Championship] = []*Team{finalist1, finalist2}
	results.Champion = b.playGame(Championship, "", finalist1, finalist2)

	return results
}

// playGame decides a single game and records it
func (b *Bracket) playGame(round Round, region Region, t1, t2 *Team) *Team {
	p := adjusted(WinProbability(t1, t2), b.UpsetFactor)

	game := &Game{
		Round:  round,
		Region: region,
		Team1:  t1,
		Team2:  t2,
	}

	if b.rng.Float64() < p {
		game.Winner = t1
	} else {
		game.Winner = t2
	}

	b.Games = append(b.Games, game)
	return game.Winner
}

// UpsetsByRound counts upsets per round in the latest playout
func (b *Bracket) UpsetsByRound() map[Round]int {
	counts := make(map[Round]int)
	for _, g := range b.Games {
		if g.IsUpset() {
			counts[g.Round]++
		}
	}
	return counts
}
