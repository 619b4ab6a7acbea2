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
	Use:   "plasma",
	Short: "Genetic plasma pattern generator",
	Long: `plasma — breeds animated plasma patterns from 52-byte genomes.

A genome is a short Base64 string encoding wave formulas and a color
gradient. Render one to a looping GIF, open a window and breed new
patterns interactively, or inspect what a genome decodes to.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"plasma %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[plasma] "+format+"\n", args...)
	}
}
