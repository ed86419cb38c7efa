package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tefirman/dancing/internal/analysis"
)

var (
	flagOddsPools   int
	flagOddsEntries int
	flagOddsSims    int
)

// OddsResult is the JSON contract consumed by dancing-twitter
type OddsResult struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Year        int                      `json:"year"`
	Champions   []*analysis.ChampionPick `json:"champions"`
}

func newOddsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Emit championship odds as JSON for downstream posting",
		Long: `Runs the pool analysis and emits the champion-pick frequencies as JSON.
The output feeds dancing-twitter, which posts the digest.`,
		RunE: runOdds,
	}

	cmd.Flags().IntVar(&flagOddsPools, "pools", 100, "Number of pools to simulate")
	cmd.Flags().IntVar(&flagOddsEntries, "entries", 10, "Number of entries per pool")
	cmd.Flags().IntVar(&flagOddsSims, "sims", 1000, "Number of playouts per pool")

	return cmd
}

func runOdds(cmd *cobra.Command, args []string) error {
	report, err := runAnalysis(flagOddsPools, flagOddsEntries, flagOddsSims)
	if err != nil {
		return err
	}

	result := &OddsResult{
		GeneratedAt: report.GeneratedAt,
		Year:        report.Year,
		Champions:   report.Champions,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
