package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tefirman/dancing/internal/team"
)

// Storage handles persistence of standings snapshots and saved reports
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// getSnapshotPath returns the path to a standings snapshot file.
// Year 0 addresses the default snapshot.
func (s *Storage) getSnapshotPath(year int) string {
	if year == 0 {
		return filepath.Join(s.dataDir, "standings.json")
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("standings_%d.json", year))
}

// LoadStandings loads a standings snapshot from disk
func (s *Storage) LoadStandings(year int) (*team.Snapshot, error) {
	path := s.getSnapshotPath(year)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No previous snapshot, return empty one
			return team.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot team.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	// Ensure Teams map is initialized
	if snapshot.Teams == nil {
		snapshot.Teams = make(map[string]*team.Team)
	}

	return &snapshot, nil
}

// SaveStandings saves a standings snapshot to disk
func (s *Storage) SaveStandings(snapshot *team.Snapshot, year int) error {
	path := s.getSnapshotPath(year)

	// Set updated timestamp
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// CreateSnapshotFromTeams creates and saves a snapshot from scraped teams
func (s *Storage) CreateSnapshotFromTeams(teams []*team.Team, year int) error {
	snapshot := team.CreateSnapshot(teams, time.Now().UTC().Format(time.RFC3339))
	return s.SaveStandings(snapshot, year)
}

// GetTeamByID retrieves a team by ID from a season's snapshot
func (s *Storage) GetTeamByID(year int, teamID string) (*team.Team, error) {
	snapshot, err := s.LoadStandings(year)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	if tm, exists := snapshot.Teams[teamID]; exists {
		return tm, nil
	}

	return nil, fmt.Errorf("team not found: %s", teamID)
}

// reportPath returns the path to a saved report
func (s *Storage) reportPath(name string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("report_%s.json", name))
}

// SaveReport saves an analysis report under a name
func (s *Storage) SaveReport(name string, report interface{}) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(s.reportPath(name), data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// LoadReport loads a saved report into the provided destination
func (s *Storage) LoadReport(name string, dest interface{}) error {
	data, err := os.ReadFile(s.reportPath(name))
	if err != nil {
		return fmt.Errorf("reading report: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("parsing report: %w", err)
	}

	return nil
}
