package manifest

// Manifest is the report of one batch embedding run.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	PayloadLen  int              `json:"payload_len"` // characters embedded
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// Asset records one cover image and its watermarked output.
type Asset struct {
	Original OriginalInfo `json:"original"`
	Output   OutputInfo   `json:"output"`
}

// OriginalInfo holds metadata about the cover image.
type OriginalInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// OutputInfo describes the watermarked file written to disk.
type OutputInfo struct {
	Path    string `json:"path"`    // relative to the output dir
	Format  string `json:"format"`
	Size    int64  `json:"size"`
	Hash    string `json:"hash"`    // xxhash64 of the encoded bytes
	Quality int    `json:"quality"` // JPEG quality used, 0 for lossless
}

// Stats aggregates a run.
type Stats struct {
	TotalAssets      int   `json:"total_assets"`
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	Failed           int   `json:"failed,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
