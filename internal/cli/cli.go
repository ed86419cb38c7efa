package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tefirman/dancing/internal/bracket"
	"github.com/tefirman/dancing/internal/filter"
	"github.com/tefirman/dancing/internal/scraper"
	"github.com/tefirman/dancing/internal/team"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNewTeams = 2
)

// exitCodeError carries a process exit code through cobra's error path,
// so commands can signal a status without calling os.Exit themselves
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// errNewTeams signals that the standings gained teams since the last
// snapshot; Execute maps it to ExitNewTeams
var errNewTeams = &exitCodeError{code: ExitNewTeams}

// exitCode maps a command error to the process exit code
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return ExitError
}

var (
	flagDataDir string
	flagFormat  string
	flagVerbose bool
	flagYear    int
	flagSeed    int64
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dancing",
		Short: "March Madness bracket pool simulator",
		Long: `A CLI tool to scrape college basketball standings, seed a 64-team
tournament field, and run Monte-Carlo bracket pool simulations: single
pools, championship odds, and trend analysis across many pools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags shared by all subcommands
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.local/share/dancing", "Data directory for snapshots and presets")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.PersistentFlags().IntVar(&flagYear, "year", seasonYear(), "Season year (the year the tournament is played)")
	cmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed for reproducible simulations (0 = time-based)")

	cmd.AddCommand(newStandingsCmd())
	cmd.AddCommand(newBracketCmd())
	cmd.AddCommand(newSimulateCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newOddsCmd())

	return cmd
}

// Execute runs the CLI
func Execute() {
	err := NewRootCmd().Execute()
	code := exitCode(err)
	if code == ExitError {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// seasonYear returns the default season year: tournaments are labeled by
// the year they finish, so from November on the season belongs to next year
func seasonYear() int {
	now := time.Now()
	if now.Month() >= time.November {
		return now.Year() + 1
	}
	return now.Year()
}

// rng builds the random source from the --seed flag
func rng() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// parseFormat validates the --format flag
func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// fetchTeams scrapes the standings for the configured season, applying an
// optional filter query
func fetchTeams(filterQuery string) ([]*team.Team, error) {
	sc := scraper.New()

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetching standings from %s\n", sc.StandingsURL(flagYear))
	}

	teams, err := sc.FetchStandings(flagYear)
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Fetched %d teams\n", len(teams))
	}

	if filterQuery != "" {
		f, err := filter.Parse(filterQuery)
		if err != nil {
			return nil, fmt.Errorf("parsing filter: %w", err)
		}
		teams = f.Apply(teams)

		if flagVerbose {
			fmt.Fprintf(os.Stderr, "%d teams after filter\n", len(teams))
		}
	}

	return teams, nil
}

// buildField scrapes standings and seeds the tournament field
func buildField() (bracket.Field, error) {
	teams, err := fetchTeams("")
	if err != nil {
		return nil, err
	}

	field, err := bracket.FieldFromStandings(teams)
	if err != nil {
		return nil, fmt.Errorf("seeding field: %w", err)
	}

	return field, nil
}
