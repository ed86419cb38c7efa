package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tefirman/dancing/internal/bracket"
)

var flagBracketPlay bool

func newBracketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracket",
		Short: "Seed a 64-team tournament field from current standings",
		Long: `Scrapes the current standings, selects the top 64 teams by rating, and
seeds them onto an S-curve across the four regions. With --play the
bracket is also played out once and the round-by-round results printed.`,
		RunE: runBracket,
	}

	cmd.Flags().BoolVar(&flagBracketPlay, "play", false, "Play the bracket out once and print results")

	return cmd
}

func runBracket(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	field, err := buildField()
	if err != nil {
		return err
	}

	var results *bracket.Results
	if flagBracketPlay {
		b, err := bracket.New(field, 0, rng())
		if err != nil {
			return fmt.Errorf("building bracket: %w", err)
		}
		results = b.Simulate()
	}

	if err := WriteField(os.Stdout, field, results, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
