package manifest

// Manifest describes one generation run.
type Manifest struct {
	Version     int           `json:"version"`
	GeneratedAt string        `json:"generated_at"`
	FontSource  string        `json:"font_source"` // "system" or "fallback"
	BasePath    string        `json:"base_path"`
	Ads         map[string]Ad `json:"ads"`
	Stats       Stats         `json:"stats"`
}

// Ad is one generated image.
type Ad struct {
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // xxhash64, 16 hex chars
	Path   string `json:"path"` // relative to base_path
}

// Stats aggregates the run.
type Stats struct {
	TotalAds   int   `json:"total_ads"`
	TotalBytes int64 `json:"total_bytes"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest's name inside the output directory.
const FileName = "ads.manifest.json"
