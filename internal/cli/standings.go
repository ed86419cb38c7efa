package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tefirman/dancing/internal/storage"
	"github.com/tefirman/dancing/internal/team"
)

var (
	flagStandingsFilter  string
	flagStandingsSort    string
	flagStandingsRefresh bool
)

func newStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Scrape current standings and report teams new since last check",
		Long: `Scrapes the Warren Nolan ELO standings for the season, prints them,
and diffs against the previous snapshot. Teams that entered the standings
since the last run are flagged and the command exits with code 2.`,
		RunE: runStandings,
	}

	cmd.Flags().StringVar(&flagStandingsFilter, "filter", "", "Filter query, e.g. 'conf:SEC rating:>1600'")
	cmd.Flags().StringVar(&flagStandingsSort, "sort", "rank", "Sort order: rank, rating, name, or conference")
	cmd.Flags().BoolVar(&flagStandingsRefresh, "refresh", false, "Refresh snapshot without reporting new teams")

	return cmd
}

func runStandings(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	sortOrder := SortOrder(flagStandingsSort)
	if !sortOrder.valid() {
		return fmt.Errorf("invalid sort order: %s (must be rank, rating, name, or conference)", flagStandingsSort)
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	teams, err := fetchTeams(flagStandingsFilter)
	if err != nil {
		return err
	}

	// Load previous snapshot
	var previous *team.Snapshot
	if !flagStandingsRefresh {
		previous, err = store.LoadStandings(flagYear)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}

		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Loaded previous snapshot with %d teams\n", len(previous.Teams))
		}
	}

	// Compute diff before overwriting the snapshot
	diff := team.Diff(previous, teams, "")

	if err := store.CreateSnapshotFromTeams(teams, flagYear); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Saved snapshot\n")
	}

	sortTeams(teams, sortOrder)

	result := &StandingsResult{
		CheckedAt: time.Now().UTC(),
		Year:      flagYear,
		Teams:     teams,
		NewTeams:  diff.NewTeams,
		TeamCount: len(teams),
	}

	// In refresh mode, don't report new teams
	if flagStandingsRefresh {
		if format == FormatText {
			fmt.Println("Snapshot refreshed successfully.")
			return nil
		}
		result.NewTeams = nil
		return WriteStandings(os.Stdout, result, format, flagVerbose)
	}

	if err := WriteStandings(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	// Exit code signals whether the standings gained teams
	if len(diff.NewTeams) > 0 {
		return errNewTeams
	}

	return nil
}
