package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tefirman/dancing/internal/bracket"
	"github.com/tefirman/dancing/internal/config"
	"github.com/tefirman/dancing/internal/pool"
)

var (
	flagSimEntries   int
	flagSimSims      int
	flagSimSeedBonus bool
	flagSimPreset    string
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a single bracket pool and print projected standings",
		Long: `Builds a pool of entries with upset appetites spread from chalk-leaning
to upset-heavy, then scores them against repeated playouts of the actual
tournament. The projected pool winner tops the standings.`,
		RunE: runSimulate,
	}

	cmd.Flags().IntVar(&flagSimEntries, "entries", 10, "Number of entries in the pool")
	cmd.Flags().IntVar(&flagSimSims, "sims", 1000, "Number of tournament playouts to score against")
	cmd.Flags().BoolVar(&flagSimSeedBonus, "seed-bonus", false, "Add the picked team's seed to correct picks")
	cmd.Flags().StringVar(&flagSimPreset, "preset", "", "Pool preset name (overrides --entries/--sims)")

	return cmd
}

// poolSetup resolves entries/sims/scoring from flags or a named preset
func poolSetup() (entries, sims int, scoring *pool.Scoring, err error) {
	entries, sims = flagSimEntries, flagSimSims
	scoring = pool.DefaultScoring()
	scoring.SeedBonus = flagSimSeedBonus

	if flagSimPreset == "" {
		return entries, sims, scoring, nil
	}

	store := config.NewFileStore(presetsPath())
	presets, err := store.Load()
	if err != nil {
		return 0, 0, nil, fmt.Errorf("loading presets: %w", err)
	}

	cfg := presets.Get(flagSimPreset)
	if cfg == nil {
		return 0, 0, nil, fmt.Errorf("unknown preset: %s", flagSimPreset)
	}

	entries, sims = cfg.EntriesPerPool, cfg.SimsPerPool
	if cfg.Scoring != nil {
		scoring = cfg.Scoring
	}
	return entries, sims, scoring, nil
}

// presetsPath returns the presets file path under the data dir
func presetsPath() string {
	dir := flagDataDir
	if len(dir) >= 2 && dir[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[2:])
		}
	}
	return filepath.Join(dir, "pools.json")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	entries, sims, scoring, err := poolSetup()
	if err != nil {
		return err
	}

	field, err := buildField()
	if err != nil {
		return err
	}

	source := rng()
	actual, err := bracket.New(field, 0, source)
	if err != nil {
		return fmt.Errorf("building actual bracket: %w", err)
	}

	p := pool.New(actual, scoring)
	for j := 0; j < entries; j++ {
		factor := 0.1 + (float64(j)/float64(entries))*0.3
		entry, err := bracket.New(field, factor, source)
		if err != nil {
			return fmt.Errorf("building entry bracket: %w", err)
		}
		if err := p.AddEntry(fmt.Sprintf("Entry_%d", j+1), entry); err != nil {
			return fmt.Errorf("adding entry: %w", err)
		}
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Simulating pool: %d entries, %d sims\n", entries, sims)
	}

	started := time.Now()
	standings, err := p.Simulate(sims)
	if err != nil {
		return fmt.Errorf("simulating pool: %w", err)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Simulation took %s\n", time.Since(started).Round(time.Millisecond))
	}

	if err := WritePoolStandings(os.Stdout, standings, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
