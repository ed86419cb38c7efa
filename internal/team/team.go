package team

import (
	"crypto/sha1"
	"fmt"
	"strconv"
	"strings"
)

// Team represents a college basketball team in the standings
type Team struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Conference string  `json:"conference"`
	Rating     float64 `json:"rating"` // ELO rating from Warren Nolan
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Rank       int     `json:"rank"` // Position in the scraped standings
}

// GenerateID creates a deterministic ID for a team based on its normalized name.
// The ID stays stable across scrapes even as ratings, records, and ranks change.
func GenerateID(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	h := sha1.New()
	h.Write([]byte(normalized))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// New creates a new Team with its ID populated
func New(name, conference string, rating float64, wins, losses, rank int) *Team {
	return &Team{
		ID:         GenerateID(name),
		Name:       strings.TrimSpace(name),
		Conference: strings.TrimSpace(conference),
		Rating:     rating,
		Wins:       wins,
		Losses:     losses,
		Rank:       rank,
	}
}

// ParseRecord parses a win-loss record like "24-7" into wins and losses
func ParseRecord(record string) (wins, losses int, err error) {
	parts := strings.SplitN(strings.TrimSpace(record), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed record: %q", record)
	}

	wins, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed wins in record %q: %w", record, err)
	}

	losses, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed losses in record %q: %w", record, err)
	}

	if wins < 0 || losses < 0 {
		return 0, 0, fmt.Errorf("negative record: %q", record)
	}

	return wins, losses, nil
}

// Record formats the team's win-loss record as "W-L"
func (t *Team) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

// WinPct returns the team's winning percentage, 0 for an empty record
func (t *Team) WinPct() float64 {
	games := t.Wins + t.Losses
	if games == 0 {
		return 0
	}
	return float64(t.Wins) / float64(games)
}
