package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/tefirman/dancing/internal/analysis"
	"github.com/tefirman/dancing/internal/bracket"
	"github.com/tefirman/dancing/internal/pool"
	"github.com/tefirman/dancing/internal/team"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// StandingsResult contains standings data to be output
type StandingsResult struct {
	CheckedAt time.Time    `json:"checked_at"`
	Year      int          `json:"year"`
	Teams     []*team.Team `json:"teams"`
	NewTeams  []*team.Team `json:"new_teams,omitempty"`
	TeamCount int          `json:"team_count"`
}

// AnalysisReport contains the full trend analysis to be output
type AnalysisReport struct {
	GeneratedAt time.Time                   `json:"generated_at"`
	Year        int                         `json:"year"`
	Pools       int                         `json:"pools"`
	Entries     int                         `json:"entries"`
	Sims        int                         `json:"sims"`
	UpsetStats  []*analysis.RoundUpsetStats `json:"upset_stats"`
	Underdogs   []*analysis.Underdog        `json:"underdogs"`
	Champions   []*analysis.ChampionPick    `json:"champions"`
}

// writeJSON outputs any result as indented JSON
func writeJSON(w io.Writer, result interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// WriteStandings writes standings in the specified format
func WriteStandings(w io.Writer, result *StandingsResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeStandingsText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeStandingsText(w io.Writer, result *StandingsResult, verbose bool) error {
	if result.TeamCount == 0 {
		fmt.Fprintln(w, "No teams found.")
		return nil
	}

	fmt.Fprintf(w, "%s standings (%d teams):\n\n", seasonLabel(result.Year), result.TeamCount)
	fmt.Fprintf(w, "%4s  %-24s %-12s %6s  %8s\n", "Rank", "Team", "Conference", "Record", "ELO")
	for _, tm := range result.Teams {
		fmt.Fprintf(w, "%4d  %-24s %-12s %6s  %8.2f\n",
			tm.Rank, tm.Name, tm.Conference, tm.Record(), tm.Rating)
		if verbose {
			fmt.Fprintf(w, "      ID: %s\n", tm.ID)
		}
	}

	if len(result.NewTeams) > 0 {
		fmt.Fprintf(w, "\n%d new since last check:\n", len(result.NewTeams))
		for _, tm := range result.NewTeams {
			fmt.Fprintf(w, "  NEW: %s (%s)\n", tm.Name, tm.Conference)
		}
	}

	return nil
}

// WriteField writes the seeded field, and playout results when present
func WriteField(w io.Writer, field bracket.Field, results *bracket.Results, format OutputFormat) error {
	switch format {
	case FormatJSON:
		out := struct {
			Field   bracket.Field    `json:"field"`
			Results *bracket.Results `json:"results,omitempty"`
		}{field, results}
		return writeJSON(w, out)
	case FormatText:
		return writeFieldText(w, field, results)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeFieldText(w io.Writer, field bracket.Field, results *bracket.Results) error {
	seedOrder := make([]int, 16)
	for i := range seedOrder {
		seedOrder[i] = i + 1
	}

	for _, region := range bracket.Regions {
		fmt.Fprintf(w, "\n%s:\n", region)
		for _, tm := range field.RegionTeams(region, seedOrder) {
			fmt.Fprintf(w, "  %2d  %-24s %-12s %8.2f\n", tm.Seed, tm.Name, tm.Conference, tm.Rating)
		}
	}

	if results == nil {
		return nil
	}

	fmt.Fprintln(w, "\nPlayout:")
	for _, round := range bracket.RoundOrder[1:] {
		fmt.Fprintf(w, "\n%s:\n", round)
		for _, tm := range results.Rounds[round] {
			fmt.Fprintf(w, "  (%d) %s\n", tm.Seed, tm.Name)
		}
	}
	fmt.Fprintf(w, "\nChampion: (%d) %s\n", results.Champion.Seed, results.Champion.Name)

	return nil
}

// WritePoolStandings writes simulated pool standings
func WritePoolStandings(w io.Writer, standings []*pool.Standing, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, standings)
	case FormatText:
		return writePoolStandingsText(w, standings)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writePoolStandingsText(w io.Writer, standings []*pool.Standing) error {
	if len(standings) == 0 {
		fmt.Fprintln(w, "No entries.")
		return nil
	}

	fmt.Fprintf(w, "%-16s %8s  %9s  %9s\n", "Entry", "Win %", "Avg Score", "Max Score")
	for _, s := range standings {
		fmt.Fprintf(w, "%-16s %7.1f%%  %9.1f  %9d\n",
			s.Name, s.WinPct*100, s.AvgScore, s.MaxScore)
	}
	fmt.Fprintf(w, "\nProjected winner: %s\n", standings[0].Name)

	return nil
}

// WriteAnalysis writes the trend analysis report. In text mode each
// section shows at most top rows (per round for underdogs).
func WriteAnalysis(w io.Writer, report *AnalysisReport, format OutputFormat, top int) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeAnalysisText(w, report, top)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeAnalysisText(w io.Writer, report *AnalysisReport, top int) error {
	fmt.Fprintf(w, "Bracket pool analysis, %s: %d pools x %d entries x %d sims\n",
		seasonLabel(report.Year), report.Pools, report.Entries, report.Sims)

	fmt.Fprintln(w, "\nUpset statistics by round:")
	fmt.Fprintf(w, "%-14s %6s %6s %4s %4s\n", "Round", "Avg", "Std", "Min", "Max")
	for _, s := range report.UpsetStats {
		fmt.Fprintf(w, "%-14s %6.2f %6.2f %4d %4d\n", s.Round, s.Avg, s.Std, s.Min, s.Max)
	}

	fmt.Fprintln(w, "\nMost common underdogs:")
	perRound := make(map[bracket.Round]int)
	for _, u := range report.Underdogs {
		if perRound[u.MakeItTo] >= top {
			continue
		}
		if perRound[u.MakeItTo] == 0 {
			fmt.Fprintf(w, "\n  Make it to %s:\n", u.MakeItTo)
		}
		perRound[u.MakeItTo]++
		fmt.Fprintf(w, "    (%2d) %-24s %5.1f%%\n", u.Seed, u.Team, u.Frequency*100)
	}
	if len(report.Underdogs) == 0 {
		fmt.Fprintln(w, "  none")
	}

	fmt.Fprintln(w, "\nChampionship picks:")
	for i, c := range report.Champions {
		if i >= top {
			break
		}
		fmt.Fprintf(w, "  (%2d) %-24s %-12s %5.1f%%\n", c.Seed, c.Team, c.Conference, c.Frequency*100)
	}

	return nil
}

// seasonLabel formats a season year like "2025-26"
func seasonLabel(year int) string {
	return fmt.Sprintf("%d-%02d", year-1, year%100)
}
