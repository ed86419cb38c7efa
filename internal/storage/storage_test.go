package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tefirman/dancing/internal/team"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}
	return store
}

func TestLoadStandingsMissing(t *testing.T) {
	store := testStorage(t)

	snapshot, err := store.LoadStandings(2026)
	if err != nil {
		t.Fatalf("LoadStandings failed: %v", err)
	}
	if len(snapshot.Teams) != 0 {
		t.Errorf("expected empty snapshot, got %d teams", len(snapshot.Teams))
	}
}

func TestSaveAndLoadStandings(t *testing.T) {
	store := testStorage(t)

	teams := []*team.Team{
		team.New("UConn", "Big East", 1744.5, 28, 3, 1),
		team.New("Houston", "Big 12", 1731.2, 30, 2, 2),
	}

	if err := store.CreateSnapshotFromTeams(teams, 2026); err != nil {
		t.Fatalf("CreateSnapshotFromTeams failed: %v", err)
	}

	loaded, err := store.LoadStandings(2026)
	if err != nil {
		t.Fatalf("LoadStandings failed: %v", err)
	}

	if len(loaded.Teams) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(loaded.Teams))
	}
	if loaded.UpdatedAt == "" {
		t.Error("expected UpdatedAt to be set")
	}
	if _, err := time.Parse(time.RFC3339, loaded.UpdatedAt); err != nil {
		t.Errorf("UpdatedAt is not RFC3339: %v", err)
	}

	for _, tm := range teams {
		stored, ok := loaded.Teams[tm.ID]
		if !ok {
			t.Errorf("team %s missing after reload", tm.Name)
			continue
		}
		if stored.Rating != tm.Rating {
			t.Errorf("team %s: expected rating %f, got %f", tm.Name, tm.Rating, stored.Rating)
		}
	}
}

func TestSnapshotPathPerSeason(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	teams := []*team.Team{team.New("UConn", "Big East", 1744.5, 28, 3, 1)}
	if err := store.CreateSnapshotFromTeams(teams, 2026); err != nil {
		t.Fatalf("CreateSnapshotFromTeams failed: %v", err)
	}
	if err := store.CreateSnapshotFromTeams(teams, 0); err != nil {
		t.Fatalf("CreateSnapshotFromTeams failed: %v", err)
	}

	for _, name := range []string{"standings_2026.json", "standings.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}

func TestGetTeamByID(t *testing.T) {
	store := testStorage(t)

	uconn := team.New("UConn", "Big East", 1744.5, 28, 3, 1)
	if err := store.CreateSnapshotFromTeams([]*team.Team{uconn}, 2026); err != nil {
		t.Fatalf("CreateSnapshotFromTeams failed: %v", err)
	}

	got, err := store.GetTeamByID(2026, uconn.ID)
	if err != nil {
		t.Fatalf("GetTeamByID failed: %v", err)
	}
	if got.Name != "UConn" {
		t.Errorf("expected 'UConn', got %q", got.Name)
	}

	if _, err := store.GetTeamByID(2026, "missing-id"); err == nil {
		t.Error("expected error for unknown team ID")
	}
}

func TestSaveAndLoadReport(t *testing.T) {
	store := testStorage(t)

	type row struct {
		Team string  `json:"team"`
		Freq float64 `json:"freq"`
	}
	report := []row{{"UConn", 0.41}, {"Houston", 0.22}}

	if err := store.SaveReport("champions", report); err != nil {
		t.Fatalf("SaveReport failed: %v", err)
	}

	var loaded []row
	if err := store.LoadReport("champions", &loaded); err != nil {
		t.Fatalf("LoadReport failed: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Team != "UConn" {
		t.Errorf("unexpected report after reload: %v", loaded)
	}

	if err := store.LoadReport("missing", &loaded); err == nil {
		t.Error("expected error for missing report")
	}
}

func TestHomeDirExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	store, err := New("~/.cache/dancing-storage-test")
	if err != nil {
		t.Fatalf("New with ~ failed: %v", err)
	}
	defer os.RemoveAll(filepath.Join(home, ".cache/dancing-storage-test"))

	if store.dataDir != filepath.Join(home, ".cache/dancing-storage-test") {
		t.Errorf("expected expanded path, got %q", store.dataDir)
	}
}
