package notifier

import (
	"github.com/tefirman/dancing/internal/analysis"
)

// Notifier defines the interface for posting champion-odds digests
type Notifier interface {
	// Notify posts a digest for the given champion picks
	Notify(picks []*analysis.ChampionPick) error
}
