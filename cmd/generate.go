package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/AnyUserName/adgen/internal/fontload"
	"github.com/AnyUserName/adgen/internal/generator"
	"github.com/AnyUserName/adgen/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	genOutDir   string
	genFontPath string
	genManifest bool
)

func init() {
	rootCmd.Flags().StringVarP(&genOutDir, "out", "o", "public/ads", "output directory")
	rootCmd.Flags().StringVar(&genFontPath, "font", fontload.DefaultPath, "preferred font file (TTF/OTF/TTC)")
	rootCmd.Flags().BoolVar(&genManifest, "manifest", false, "also write "+manifest.FileName)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	absOutput, err := filepath.Abs(genOutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	logVerbose("output:  %s", absOutput)
	logVerbose("font:    %s", genFontPath)

	g := generator.New(generator.Config{
		OutputDir: absOutput,
		FontPath:  genFontPath,
		Stdout:    cmd.OutOrStdout(),
		Logf:      logVerbose,
	})

	m, err := g.Run()
	if err != nil {
		return err
	}
	logVerbose("font source: %s", m.FontSource)

	if genManifest {
		manifestPath := filepath.Join(absOutput, manifest.FileName)
		if err := manifest.WriteJSON(m, manifestPath); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		logVerbose("manifest: %s", manifestPath)
	}
	return nil
}
