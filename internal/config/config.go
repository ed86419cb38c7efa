package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tefirman/dancing/internal/pool"
)

// PoolConfig describes how a simulated pool is set up
type PoolConfig struct {
	EntriesPerPool int           `json:"entries_per_pool"`
	SimsPerPool    int           `json:"sims_per_pool"`
	NumPools       int           `json:"num_pools"`
	Scoring        *pool.Scoring `json:"scoring,omitempty"`
}

// Presets maps preset names to pool configurations
type Presets map[string]*PoolConfig

// Storage defines the interface for preset persistence
type Storage interface {
	Load() (Presets, error)
	Save(presets Presets) error
}

// Default returns the default pool configuration
func Default() *PoolConfig {
	return &PoolConfig{
		EntriesPerPool: 10,
		SimsPerPool:    1000,
		NumPools:       100,
	}
}

// NewPresets creates a new empty presets map
func NewPresets() Presets {
	return make(Presets)
}

// Get retrieves a preset by name, nil if absent
func (p Presets) Get(name string) *PoolConfig {
	return p[normalize(name)]
}

// Set stores a preset under a name after validating it
func (p Presets) Set(name string, cfg *PoolConfig) error {
	name = normalize(name)
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	p[name] = cfg
	return nil
}

// Delete removes a preset, reporting whether it existed
func (p Presets) Delete(name string) bool {
	name = normalize(name)
	if _, exists := p[name]; !exists {
		return false
	}
	delete(p, name)
	return true
}

// Names returns all preset names, sorted
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks a pool configuration for usable values
func (c *PoolConfig) Validate() error {
	if c.EntriesPerPool <= 0 {
		return fmt.Errorf("entries_per_pool must be positive, got %d", c.EntriesPerPool)
	}
	if c.SimsPerPool <= 0 {
		return fmt.Errorf("sims_per_pool must be positive, got %d", c.SimsPerPool)
	}
	if c.NumPools <= 0 {
		return fmt.Errorf("num_pools must be positive, got %d", c.NumPools)
	}
	return nil
}

// ToJSON marshals presets to indented JSON
func (p Presets) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FromJSON unmarshals presets from JSON
func FromJSON(data []byte) (Presets, error) {
	var presets Presets
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("unmarshaling presets: %w", err)
	}
	return presets, nil
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
