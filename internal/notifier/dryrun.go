package notifier

import (
	"fmt"

	"github.com/tefirman/dancing/internal/analysis"
)

// DryRunNotifier prints what would be tweeted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the digest that would be posted
func (n *DryRunNotifier) Notify(picks []*analysis.ChampionPick) error {
	if len(picks) == 0 {
		fmt.Println("No champion picks to post")
		return nil
	}

	tweet := formatDigest(picks)
	fmt.Println("--- Digest ---")
	fmt.Println(tweet)
	fmt.Printf("\n(Length: %d characters)\n", len(tweet))
	return nil
}
