package notifier

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tefirman/dancing/internal/analysis"
)

func TestNewTwitterNotifierMissingCredentials(t *testing.T) {
	for _, key := range []string{
		"TWITTER_API_KEY", "TWITTER_API_SECRET",
		"TWITTER_ACCESS_TOKEN", "TWITTER_ACCESS_SECRET",
	} {
		old, had := os.LookupEnv(key)
		os.Unsetenv(key)
		if had {
			defer os.Setenv(key, old)
		}
	}

	if _, err := NewTwitterNotifier(); err == nil {
		t.Error("expected error with missing credentials, got none")
	}
}

func TestFormatDigest(t *testing.T) {
	picks := []*analysis.ChampionPick{
		{Seed: 1, Team: "UConn", Conference: "Big East", Frequency: 0.41},
		{Seed: 1, Team: "Houston", Conference: "Big 12", Frequency: 0.22},
		{Seed: 2, Team: "Arizona", Conference: "Big 12", Frequency: 0.11},
	}

	tweet := formatDigest(picks)

	if !strings.Contains(tweet, "UConn") {
		t.Error("digest should contain the top pick")
	}
	if !strings.Contains(tweet, "41%") {
		t.Error("digest should contain the top frequency")
	}
	if !strings.Contains(tweet, "#MarchMadness") {
		t.Error("digest should carry the hashtag footer")
	}
	if len(tweet) > 280 {
		t.Errorf("digest exceeds tweet limit: %d characters", len(tweet))
	}
}

func TestFormatDigestTruncates(t *testing.T) {
	picks := make([]*analysis.ChampionPick, 0, 40)
	for i := 0; i < 40; i++ {
		picks = append(picks, &analysis.ChampionPick{
			Seed:      i%16 + 1,
			Team:      fmt.Sprintf("Some Very Long University Name %02d", i),
			Frequency: 0.025,
		})
	}

	tweet := formatDigest(picks)
	if len(tweet) > 280 {
		t.Errorf("digest exceeds tweet limit: %d characters", len(tweet))
	}
	if !strings.Contains(tweet, "#MarchMadness") {
		t.Error("truncated digest should still carry the footer")
	}
}

func TestFormatDigestCountsRunes(t *testing.T) {
	picks := make([]*analysis.ChampionPick, 0, 40)
	for i := 0; i < 40; i++ {
		picks = append(picks, &analysis.ChampionPick{
			Seed:      i%16 + 1,
			Team:      fmt.Sprintf("Université Élène-Ángel São %02d", i),
			Frequency: 0.025,
		})
	}

	tweet := formatDigest(picks)
	if n := utf8.RuneCountInString(tweet); n > 280 {
		t.Errorf("digest exceeds tweet limit: %d runes", n)
	}
	if !utf8.ValidString(tweet) {
		t.Error("digest should not split a UTF-8 sequence")
	}
	if !strings.Contains(tweet, "#MarchMadness") {
		t.Error("digest should still carry the footer")
	}
}
