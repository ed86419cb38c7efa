package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tefirman/dancing/internal/analysis"
	"github.com/tefirman/dancing/internal/storage"
)

var (
	flagAnalyzePools   int
	flagAnalyzeEntries int
	flagAnalyzeSims    int
	flagAnalyzeTop     int
	flagAnalyzeSave    string
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze trends across many simulated bracket pools",
		Long: `Simulates many bracket pools and aggregates what the winning brackets
have in common: upset counts per round, the underdogs they ride deepest,
and the champions they pick.`,
		RunE: runAnalyze,
	}

	cmd.Flags().IntVar(&flagAnalyzePools, "pools", 100, "Number of pools to simulate")
	cmd.Flags().IntVar(&flagAnalyzeEntries, "entries", 10, "Number of entries per pool")
	cmd.Flags().IntVar(&flagAnalyzeSims, "sims", 1000, "Number of playouts per pool")
	cmd.Flags().IntVar(&flagAnalyzeTop, "top", 10, "Rows shown per report section")
	cmd.Flags().StringVar(&flagAnalyzeSave, "save", "", "Save the report under this name in the data dir")

	return cmd
}

// runAnalysis builds the field, runs the pools, and assembles the report
func runAnalysis(pools, entries, sims int) (*AnalysisReport, error) {
	field, err := buildField()
	if err != nil {
		return nil, err
	}

	a, err := analysis.New(field, pools, nil, rng())
	if err != nil {
		return nil, fmt.Errorf("initializing analysis: %w", err)
	}

	if err := a.SimulatePools(entries, sims); err != nil {
		return nil, fmt.Errorf("simulating pools: %w", err)
	}

	upsets, err := a.UpsetStats()
	if err != nil {
		return nil, fmt.Errorf("computing upset stats: %w", err)
	}
	underdogs, err := a.CommonUnderdogs()
	if err != nil {
		return nil, fmt.Errorf("finding underdogs: %w", err)
	}
	champions, err := a.ChampionPicks()
	if err != nil {
		return nil, fmt.Errorf("analyzing champion picks: %w", err)
	}

	return &AnalysisReport{
		GeneratedAt: time.Now().UTC(),
		Year:        flagYear,
		Pools:       pools,
		Entries:     entries,
		Sims:        sims,
		UpsetStats:  upsets,
		Underdogs:   underdogs,
		Champions:   champions,
	}, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	report, err := runAnalysis(flagAnalyzePools, flagAnalyzeEntries, flagAnalyzeSims)
	if err != nil {
		return err
	}

	if flagAnalyzeSave != "" {
		store, err := storage.New(flagDataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		if err := store.SaveReport(flagAnalyzeSave, report); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		if flagVerbose {
			fmt.Fprintf(os.Stderr, "Saved report %q\n", flagAnalyzeSave)
		}
	}

	if err := WriteAnalysis(os.Stdout, report, format, flagAnalyzeTop); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
