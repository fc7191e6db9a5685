package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestManifestRoundtrip(t *testing.T) {
	m := New("robust", 11)
	m.Assets["photos/lena"] = Asset{
		Original: OriginalInfo{
			Width: 512, Height: 512,
			Format: "jpeg", Size: 100000,
		},
		Output: OutputInfo{
			Path:    "photos/lena.wm.abcd1234.jpeg",
			Format:  "jpeg",
			Size:    95000,
			Hash:    "abcd1234abcd1234",
			Quality: 90,
		},
	}
	m.ComputeStats()

	dir := t.TempDir()
	path := filepath.Join(dir, "dctmark.manifest.json")
	if err := WriteJSON(m, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m2 Manifest
	if err := json.Unmarshal(data, &m2); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if m2.Version != SupportedManifestVersion {
		t.Errorf("version: got %d, want %d", m2.Version, SupportedManifestVersion)
	}
	if m2.Profile != "robust" {
		t.Errorf("profile: got %q", m2.Profile)
	}
	if m2.PayloadLen != 11 {
		t.Errorf("payload_len: got %d", m2.PayloadLen)
	}

	a, ok := m2.Assets["photos/lena"]
	if !ok {
		t.Fatal("asset photos/lena missing")
	}
	if a.Output.Hash != "abcd1234abcd1234" {
		t.Errorf("hash: got %q", a.Output.Hash)
	}
	if a.Original.Width != 512 {
		t.Errorf("width: got %d", a.Original.Width)
	}

	if m2.Stats.TotalAssets != 1 {
		t.Errorf("total_assets: got %d", m2.Stats.TotalAssets)
	}
	if m2.Stats.TotalInputBytes != 100000 || m2.Stats.TotalOutputBytes != 95000 {
		t.Errorf("byte stats: %+v", m2.Stats)
	}
}

func TestComputeStatsKeepsFailed(t *testing.T) {
	m := New("default", 0)
	m.Stats.Failed = 3
	m.ComputeStats()
	if m.Stats.Failed != 3 {
		t.Errorf("failed count lost: %d", m.Stats.Failed)
	}
}

func TestManifestIgnoresUnknownFields(t *testing.T) {
	raw := `{
		"version": 1,
		"generated_at": "2026-01-01T00:00:00Z",
		"profile": "default",
		"payload_len": 5,
		"future_field": "ignored",
		"assets": {},
		"stats": { "total_assets": 0, "total_input_bytes": 0, "total_output_bytes": 0, "new_stat": 42 }
	}`
	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal with unknown fields: %v", err)
	}
	if m.Version != 1 || m.PayloadLen != 5 {
		t.Errorf("parsed: version=%d payload_len=%d", m.Version, m.PayloadLen)
	}
}
