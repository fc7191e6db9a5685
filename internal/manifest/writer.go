package manifest

import (
	"encoding/json"
	"os"
	"time"
)

// New creates an empty manifest for one run.
func New(profileName string, payloadLen int) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Profile:     profileName,
		PayloadLen:  payloadLen,
		Assets:      make(map[string]Asset),
	}
}

// ComputeStats recalculates the aggregate statistics from assets.
func (m *Manifest) ComputeStats() {
	s := Stats{Failed: m.Stats.Failed}
	s.TotalAssets = len(m.Assets)
	for _, a := range m.Assets {
		s.TotalInputBytes += a.Original.Size
		s.TotalOutputBytes += a.Output.Size
	}
	m.Stats = s
}

// WriteJSON serializes the manifest to a JSON file.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}
