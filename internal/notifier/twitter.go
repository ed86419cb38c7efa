package notifier

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/tefirman/dancing/internal/analysis"
)

// TwitterNotifier posts champion-odds digests to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts a single digest tweet for the champion picks
func (n *TwitterNotifier) Notify(picks []*analysis.ChampionPick) error {
	if len(picks) == 0 {
		return nil
	}

	tweet := formatDigest(picks)

	_, _, err := n.client.Statuses.Update(tweet, nil)
	if err != nil {
		return fmt.Errorf("failed to post digest tweet: %w", err)
	}

	return nil
}

// formatDigest formats champion picks as a digest tweet. Twitter's
// limit counts characters, so lengths are measured in runes, not bytes.
func formatDigest(picks []*analysis.ChampionPick) string {
	const header = "Bracket pool championship odds:\n\n"
	const footer = "\n#MarchMadness #BracketPool"

	var b strings.Builder
	b.WriteString(header)
	length := utf8.RuneCountInString(header)

	for i, pick := range picks {
		line := fmt.Sprintf("%d. (%d) %s - %.0f%%\n",
			i+1, pick.Seed, pick.Team, pick.Frequency*100)

		// Stop before the line that would break the limit, leaving room
		// for the hashtag footer
		lineLength := utf8.RuneCountInString(line)
		if length+lineLength > 240 {
			break
		}
		b.WriteString(line)
		length += lineLength
	}

	b.WriteString(footer)

	tweet := b.String()

	// Twitter limit is 280 characters
	if utf8.RuneCountInString(tweet) > 280 {
		runes := []rune(tweet)
		tweet = string(runes[:277]) + "..."
	}

	return tweet
}
