package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists presets as a JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed preset store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads presets from disk. A missing file yields empty presets.
func (f *FileStore) Load() (Presets, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPresets(), nil
		}
		return nil, fmt.Errorf("reading presets: %w", err)
	}

	presets, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	if presets == nil {
		presets = NewPresets()
	}
	return presets, nil
}

// Save writes presets to disk, creating parent directories as needed
func (f *FileStore) Save(presets Presets) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("creating presets directory: %w", err)
	}

	data, err := presets.ToJSON()
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("writing presets: %w", err)
	}

	return nil
}
