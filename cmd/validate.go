package cmd

import (
	"fmt"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/adgen/internal/ads"
	"github.com/AnyUserName/adgen/internal/hasher"
	"github.com/AnyUserName/adgen/internal/manifest"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Check that a manifest matches the generated files on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	errors := validateManifest(m, filepath.Dir(manifestPath))

	if len(errors) == 0 {
		fmt.Fprintln(out, "  ✓ Manifest is valid")
		fmt.Fprintf(out, "  ✓ %d ads, all files present and unchanged\n", m.Stats.TotalAds)
		return nil
	}

	fmt.Fprintf(out, "  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Fprintf(out, "    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	names := make([]string, 0, len(m.Ads))
	for name := range m.Ads {
		names = append(names, name)
	}
	sort.Strings(names)

	seenPaths := map[string]bool{}
	var totalBytes int64
	for _, name := range names {
		a := m.Ads[name]
		totalBytes += a.Size

		if a.Path == "" {
			errs = append(errs, fmt.Sprintf("ad %q: missing path", name))
			continue
		}
		if seenPaths[a.Path] {
			errs = append(errs, fmt.Sprintf("ad %q: duplicate path %q", name, a.Path))
		}
		seenPaths[a.Path] = true

		want, ok := ads.Get(name)
		if !ok {
			errs = append(errs, fmt.Sprintf("ad %q: not in the catalog", name))
		} else if a.Width != want.Width || a.Height != want.Height {
			errs = append(errs, fmt.Sprintf("ad %q: dimensions %dx%d, expected %dx%d",
				name, a.Width, a.Height, want.Width, want.Height))
		}

		errs = append(errs, checkFile(name, a, filepath.Join(baseDir, filepath.FromSlash(a.Path)))...)
	}

	if m.Stats.TotalAds != len(m.Ads) {
		errs = append(errs, fmt.Sprintf("stats.total_ads mismatch: %d != %d", m.Stats.TotalAds, len(m.Ads)))
	}
	if m.Stats.TotalBytes != totalBytes {
		errs = append(errs, fmt.Sprintf("stats.total_bytes mismatch: %d != %d", m.Stats.TotalBytes, totalBytes))
	}

	return errs
}

// checkFile compares one manifest entry against the file at fullPath.
func checkFile(name string, a manifest.Ad, fullPath string) []string {
	f, err := os.Open(fullPath)
	if err != nil {
		return []string{fmt.Sprintf("ad %q: file not found: %s", name, a.Path)}
	}
	defer f.Close()
	return checkContents(name, a, f)
}

// adFile is the subset of *os.File that checkContents reads.
type adFile interface {
	io.ReadSeeker
	Stat() (fs.FileInfo, error)
}

func checkContents(name string, a manifest.Ad, f adFile) []string {
	var errs []string
	info, err := f.Stat()
	if err != nil {
		errs = append(errs, fmt.Sprintf("ad %q: stat: %v", name, err))
	} else if info.Size() != a.Size {
		errs = append(errs, fmt.Sprintf("ad %q: size mismatch: manifest=%d, disk=%d", name, a.Size, info.Size()))
	}

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		errs = append(errs, fmt.Sprintf("ad %q: not a PNG: %v", name, err))
	} else if cfg.Width != a.Width || cfg.Height != a.Height {
		errs = append(errs, fmt.Sprintf("ad %q: image is %dx%d, manifest says %dx%d",
			name, cfg.Width, cfg.Height, a.Width, a.Height))
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return append(errs, fmt.Sprintf("ad %q: rewind: %v", name, err))
	}
	hash, err := hasher.ContentHashReader(f, hasher.HexLen)
	if err != nil {
		errs = append(errs, fmt.Sprintf("ad %q: hash: %v", name, err))
	} else if hash != a.Hash {
		errs = append(errs, fmt.Sprintf("ad %q: hash mismatch: manifest=%s, disk=%s", name, a.Hash, hash))
	}
	return errs
}
