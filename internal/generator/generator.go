package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnyUserName/adgen/internal/ads"
	"github.com/AnyUserName/adgen/internal/encoder"
	"github.com/AnyUserName/adgen/internal/fontload"
	"github.com/AnyUserName/adgen/internal/hasher"
	"github.com/AnyUserName/adgen/internal/manifest"
)

// Config holds all parameters for a generation run.
type Config struct {
	OutputDir string
	FontPath  string
	Ads       []ads.Ad // nil means ads.All()

	// Stdout receives the confirmation and summary lines.
	Stdout io.Writer
	// Logf receives diagnostics. May be nil.
	Logf func(format string, args ...any)
}

// Generator renders ads and writes them to disk.
type Generator struct {
	cfg   Config
	fonts *fontload.Loader
	enc   encoder.Encoder
}

// New creates a configured generator.
func New(cfg Config) *Generator {
	if cfg.Ads == nil {
		cfg.Ads = ads.All()
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Logf == nil {
		cfg.Logf = func(string, ...any) {}
	}
	if cfg.FontPath == "" {
		cfg.FontPath = fontload.DefaultPath
	}
	return &Generator{
		cfg:   cfg,
		fonts: fontload.New(cfg.FontPath, cfg.Logf),
		enc:   encoder.Default(),
	}
}

// Run generates every ad in order and returns a manifest describing the
// written files. Each ad is saved before the next one is drawn.
func (g *Generator) Run() (*manifest.Manifest, error) {
	defer g.fonts.Close()

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	entries := make(map[string]manifest.Ad, len(g.cfg.Ads))
	for _, ad := range g.cfg.Ads {
		g.cfg.Logf("rendering: %s (%dx%d)", ad.Name, ad.Width, ad.Height)

		entry, err := g.generate(ad)
		if err != nil {
			return nil, err
		}
		entries[ad.Name] = entry

		g.cfg.Logf("wrote: %s (%d bytes, hash %s)", entry.Path, entry.Size, entry.Hash)
		fmt.Fprintf(g.cfg.Stdout, "✅ %s\n", ad.Label)
	}

	fmt.Fprintf(g.cfg.Stdout, "\nAll ads saved to %s\n", g.cfg.OutputDir)

	// Font source is only known once every face has been requested.
	m := manifest.New(g.fonts.Source())
	m.Ads = entries
	m.ComputeStats()
	return m, nil
}

func (g *Generator) generate(ad ads.Ad) (manifest.Ad, error) {
	img := render(ad, g.fonts)

	data, err := g.enc.Encode(img)
	if err != nil {
		return manifest.Ad{}, fmt.Errorf("encode %s: %w", ad.Name, err)
	}

	outPath := filepath.Join(g.cfg.OutputDir, ad.FileName)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return manifest.Ad{}, fmt.Errorf("write %s: %w", ad.FileName, err)
	}

	return manifest.Ad{
		Format: g.enc.Format(),
		Width:  ad.Width,
		Height: ad.Height,
		Size:   int64(len(data)),
		Hash:   hasher.ContentHash(data, hasher.HexLen),
		Path:   filepath.ToSlash(ad.FileName),
	}, nil
}
