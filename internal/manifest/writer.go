package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// New creates an empty manifest with defaults.
func New(fontSource string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		FontSource:  fontSource,
		BasePath:    "./",
		Ads:         make(map[string]Ad),
	}
}

// ComputeStats recalculates aggregate statistics from ads.
func (m *Manifest) ComputeStats() {
	var s Stats
	s.TotalAds = len(m.Ads)
	for _, a := range m.Ads {
		s.TotalBytes += a.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to path. Map keys are emitted sorted.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest written by WriteJSON.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
