package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tefirman/dancing/internal/analysis"
	"github.com/tefirman/dancing/internal/notifier"
)

var (
	oddsFile     = flag.String("odds-file", "", "Path to odds JSON file (or read from stdin)")
	dryRun       = flag.Bool("dry-run", false, "Print the digest without posting")
	maxPicks     = flag.Int("max-picks", 10, "Maximum number of champion picks in the digest")
	minFrequency = flag.Float64("min-frequency", 0.01, "Drop picks below this frequency")
)

func main() {
	flag.Parse()

	// Read odds from file or stdin
	var reader io.Reader
	if *oddsFile != "" {
		f, err := os.Open(*oddsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening odds file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		reader = f
	} else {
		reader = os.Stdin
	}

	// Parse JSON emitted by `dancing odds`
	var result struct {
		Champions []*analysis.ChampionPick `json:"champions"`
	}

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&result); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing JSON: %v\n", err)
		os.Exit(1)
	}

	// Drop long-shot picks
	picks := make([]*analysis.ChampionPick, 0, len(result.Champions))
	for _, pick := range result.Champions {
		if pick.Frequency >= *minFrequency {
			picks = append(picks, pick)
		}
	}

	if len(picks) > *maxPicks {
		picks = picks[:*maxPicks]
	}

	if len(picks) == 0 {
		fmt.Println("No champion picks to post")
		os.Exit(0)
	}

	var n notifier.Notifier
	if *dryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing Twitter client: %v\n", err)
			os.Exit(1)
		}
		n = tw
	}

	if err := n.Notify(picks); err != nil {
		fmt.Fprintf(os.Stderr, "Error posting digest: %v\n", err)
		os.Exit(1)
	}

	if !*dryRun {
		fmt.Printf("Posted digest with %d champion picks\n", len(picks))
	}
}
