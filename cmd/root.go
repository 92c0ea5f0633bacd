package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "adgen",
	Short: "Generate the placeholder ad images for the Pool Cue boards",
	Long: `adgen renders the three "YOUR AD HERE" placeholders shown on the
Pool Cue boards (banner, idle and side) and writes them as PNG files.

Sizes and copy are fixed. The side ad is horizontal and is rotated by the
client into its 120px slot.`,
	Version:       version,
	Args:          cobra.NoArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output, including font fallback notices")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"adgen %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[adgen] "+format+"\n", args...)
	}
}
