package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/tefirman/dancing/internal/analysis"
	"github.com/tefirman/dancing/internal/bracket"
	"github.com/tefirman/dancing/internal/pool"
	"github.com/tefirman/dancing/internal/team"
)

func sampleResult() *StandingsResult {
	teams := []*team.Team{
		team.New("UConn", "Big East", 1744.52, 28, 3, 1),
		team.New("Houston", "Big 12", 1731.18, 30, 2, 2),
	}
	return &StandingsResult{
		CheckedAt: time.Now().UTC(),
		Year:      2026,
		Teams:     teams,
		NewTeams:  teams[1:],
		TeamCount: len(teams),
	}
}

func TestWriteStandingsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStandings(&buf, sampleResult(), FormatText, false); err != nil {
		t.Fatalf("WriteStandings failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"2025-26 standings", "UConn", "28-3", "1744.52", "NEW: Houston"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteStandingsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStandings(&buf, sampleResult(), FormatJSON, false); err != nil {
		t.Fatalf("WriteStandings failed: %v", err)
	}

	var decoded StandingsResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON output is invalid: %v", err)
	}
	if decoded.TeamCount != 2 || len(decoded.NewTeams) != 1 {
		t.Errorf("unexpected decoded result: %+v", decoded)
	}
}

func TestWriteStandingsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteStandings(&buf, sampleResult(), OutputFormat("xml"), false); err == nil {
		t.Error("expected error for unknown format, got none")
	}
}

func TestWritePoolStandingsText(t *testing.T) {
	standings := []*pool.Standing{
		{Name: "Entry_3", Wins: 120, WinPct: 0.6, AvgScore: 840.2, MaxScore: 1340},
		{Name: "Entry_1", Wins: 80, WinPct: 0.4, AvgScore: 800.0, MaxScore: 1220},
	}

	var buf bytes.Buffer
	if err := WritePoolStandings(&buf, standings, FormatText); err != nil {
		t.Fatalf("WritePoolStandings failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Projected winner: Entry_3") {
		t.Errorf("output missing projected winner:\n%s", out)
	}
	if !strings.Contains(out, "60.0%") {
		t.Errorf("output missing win percentage:\n%s", out)
	}
}

func TestWriteAnalysisText(t *testing.T) {
	report := &AnalysisReport{
		GeneratedAt: time.Now().UTC(),
		Year:        2026,
		Pools:       100,
		Entries:     10,
		Sims:        1000,
		UpsetStats: []*analysis.RoundUpsetStats{
			{Round: bracket.FirstRound, Avg: 6.2, Std: 1.8, Min: 2, Max: 11},
			{Round: bracket.SecondRound, Avg: 3.1, Std: 1.2, Min: 0, Max: 6},
		},
		Underdogs: []*analysis.Underdog{
			{MakeItTo: bracket.SecondRound, Seed: 12, Team: "Drake", Frequency: 0.45},
			{MakeItTo: bracket.SecondRound, Seed: 11, Team: "NC State", Frequency: 0.31},
			{MakeItTo: bracket.Sweet16, Seed: 7, Team: "Dayton", Frequency: 0.2},
		},
		Champions: []*analysis.ChampionPick{
			{Seed: 1, Team: "UConn", Conference: "Big East", Frequency: 0.41},
			{Seed: 1, Team: "Houston", Conference: "Big 12", Frequency: 0.22},
		},
	}

	var buf bytes.Buffer
	if err := WriteAnalysis(&buf, report, FormatText, 1); err != nil {
		t.Fatalf("WriteAnalysis failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"100 pools x 10 entries x 1000 sims",
		"Upset statistics by round",
		"Make it to Second Round",
		"Drake",
		"Make it to Sweet 16",
		"Dayton",
		"UConn",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analysis output missing %q:\n%s", want, out)
		}
	}

	// top=1 caps rows per section
	if strings.Contains(out, "NC State") {
		t.Error("second underdog should be cut by top=1")
	}
	if strings.Contains(out, "Houston") {
		t.Error("second champion should be cut by top=1")
	}
}

func TestWriteFieldText(t *testing.T) {
	teams := make([]*team.Team, 0, 64)
	for i := 0; i < 64; i++ {
		teams = append(teams, team.New(
			"Team "+string(rune('A'+i%26))+string(rune('0'+i/26)),
			"Conf", 1800.0-float64(i)*5.0, 25, 6, i+1))
	}
	field, err := bracket.FieldFromStandings(teams)
	if err != nil {
		t.Fatalf("FieldFromStandings failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteField(&buf, field, nil, FormatText); err != nil {
		t.Fatalf("WriteField failed: %v", err)
	}

	out := buf.String()
	for _, region := range bracket.Regions {
		if !strings.Contains(out, string(region)+":") {
			t.Errorf("field output missing region %s:\n%s", region, out)
		}
	}
}

func TestSeasonLabel(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2026, "2025-26"},
		{2030, "2029-30"},
		{2000, "1999-00"},
	}
	for _, tt := range tests {
		if got := seasonLabel(tt.year); got != tt.want {
			t.Errorf("seasonLabel(%d) = %q, expected %q", tt.year, got, tt.want)
		}
	}
}
