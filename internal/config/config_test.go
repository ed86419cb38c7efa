package config

import (
	"path/filepath"
	"testing"

	"github.com/tefirman/dancing/internal/bracket"
	"github.com/tefirman/dancing/internal/pool"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	if cfg.EntriesPerPool != 10 || cfg.SimsPerPool != 1000 || cfg.NumPools != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestPresetsSetGetDelete(t *testing.T) {
	presets := NewPresets()

	cfg := &PoolConfig{EntriesPerPool: 8, SimsPerPool: 500, NumPools: 50}
	if err := presets.Set("Office Pool", cfg); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// Names are normalized
	if got := presets.Get("office pool"); got == nil {
		t.Fatal("expected preset under normalized name")
	} else if got.EntriesPerPool != 8 {
		t.Errorf("expected 8 entries, got %d", got.EntriesPerPool)
	}

	if presets.Get("missing") != nil {
		t.Error("expected nil for missing preset")
	}

	if !presets.Delete("OFFICE POOL") {
		t.Error("expected Delete to report true")
	}
	if presets.Delete("office pool") {
		t.Error("expected Delete of removed preset to report false")
	}
}

func TestPresetValidation(t *testing.T) {
	presets := NewPresets()

	tests := []struct {
		name string
		cfg  *PoolConfig
	}{
		{"zero entries", &PoolConfig{EntriesPerPool: 0, SimsPerPool: 100, NumPools: 10}},
		{"zero sims", &PoolConfig{EntriesPerPool: 10, SimsPerPool: 0, NumPools: 10}},
		{"zero pools", &PoolConfig{EntriesPerPool: 10, SimsPerPool: 100, NumPools: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := presets.Set("bad", tt.cfg); err == nil {
				t.Error("expected validation error, got none")
			}
		})
	}

	if err := presets.Set("", Default()); err == nil {
		t.Error("expected error for empty preset name")
	}
}

func TestPresetsNames(t *testing.T) {
	presets := NewPresets()
	for _, name := range []string{"beta", "alpha", "gamma"} {
		if err := presets.Set(name, Default()); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	names := presets.Names()
	want := []string{"alpha", "beta", "gamma"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("position %d: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "pools.json")
	store := NewFileStore(path)

	// Missing file yields empty presets
	presets, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if len(presets) != 0 {
		t.Fatalf("expected empty presets, got %d", len(presets))
	}

	cfg := &PoolConfig{
		EntriesPerPool: 12,
		SimsPerPool:    2000,
		NumPools:       250,
		Scoring: &pool.Scoring{
			RoundPoints: map[bracket.Round]int{
				bracket.FirstRound:   1,
				bracket.SecondRound:  2,
				bracket.Sweet16:      4,
				bracket.Elite8:       8,
				bracket.FinalFour:    16,
				bracket.Championship: 32,
			},
			SeedBonus: true,
		},
	}
	if err := presets.Set("big-league", cfg); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Save(presets); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := loaded.Get("big-league")
	if got == nil {
		t.Fatal("expected preset after reload")
	}
	if got.SimsPerPool != 2000 {
		t.Errorf("expected 2000 sims, got %d", got.SimsPerPool)
	}
	if got.Scoring == nil || !got.Scoring.SeedBonus {
		t.Error("expected scoring with seed bonus after reload")
	}
	if got.Scoring.RoundPoints[bracket.Championship] != 32 {
		t.Errorf("expected championship points 32, got %d",
			got.Scoring.RoundPoints[bracket.Championship])
	}
}
