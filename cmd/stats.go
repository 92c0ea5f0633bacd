package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/AnyUserName/adgen/internal/ads"
	"github.com/AnyUserName/adgen/internal/manifest"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a generated ad directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(cmd.OutOrStdout(), m)
	return nil
}

func printStats(w io.Writer, m *manifest.Manifest) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Manifest version: %d\n", m.Version)
	fmt.Fprintf(w, "  Generated:        %s\n", m.GeneratedAt)
	fmt.Fprintf(w, "  Font:             %s\n", m.FontSource)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  Total ads:        %d\n", m.Stats.TotalAds)
	fmt.Fprintf(w, "  Total size:       %s\n", formatBytes(m.Stats.TotalBytes))
	fmt.Fprintln(w)

	names := make([]string, 0, len(m.Ads))
	for name := range m.Ads {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "  Ads:")
	for _, name := range names {
		a := m.Ads[name]
		fmt.Fprintf(w, "    %-8s %5dx%-4d %9s  %s  %s\n",
			name, a.Width, a.Height, formatBytes(a.Size), a.Hash, a.Path)
	}

	var missing []string
	for _, a := range ads.All() {
		if _, ok := m.Ads[a.Name]; !ok {
			missing = append(missing, a.Name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  Warnings (%d):\n", len(missing))
		for _, name := range missing {
			fmt.Fprintf(w, "    ⚠ ad %q not generated\n", name)
		}
	}
	fmt.Fprintln(w)
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
