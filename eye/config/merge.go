package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeMedia merges media from a file with inline media
func (m *Media) MergeMedia() error {
	if m.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(m.FromFile)
	if err != nil {
		return fmt.Errorf("reading media file: %w", err)
	}

	var fileMedia map[string]float64
	if err := json.Unmarshal(data, &fileMedia); err != nil {
		return fmt.Errorf("parsing media file: %w", err)
	}

	if m.Inline == nil {
		m.Inline = make(map[string]float64)
	}

	// Inline media take precedence
	for name, index := range fileMedia {
		if _, exists := m.Inline[name]; !exists {
			m.Inline[name] = index
		}
	}

	return nil
}

// addDefaults fills in every medium that is neither inline nor from the media file
func (m *Media) addDefaults(defaults map[string]float64) {
	if m.Inline == nil {
		m.Inline = make(map[string]float64, len(defaults))
	}
	for name, index := range defaults {
		if _, exists := m.Inline[name]; !exists {
			m.Inline[name] = index
		}
	}
}

func (m *Media) HasMedium(name string) bool {
	_, exists := m.Inline[name]
	return exists
}

// Index looks up a medium by name
func (m *Media) Index(name string) (float64, error) {
	n, ok := m.Inline[name]
	if !ok {
		return 0, fmt.Errorf("undefined medium %q", name)
	}
	return n, nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *ExperimentConfig) LoadAndMerge() error {
	if err := c.Media.MergeMedia(); err != nil {
		return fmt.Errorf("merging media: %w", err)
	}
	return nil
}
