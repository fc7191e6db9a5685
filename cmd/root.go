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
	Use:   "dctmark",
	Short: "Blind DCT watermarking for still images",
	Long: `dctmark — embeds a short text payload into the luminance channel of an
image so it survives JPEG recompression, and recovers it later without
the original cover.

The payload is Reed-Solomon protected and dispersed over the mid-band
DCT coefficients by two seeded permutations; the seeds act as a shared
secret between embedder and extractor.`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"dctmark %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[dctmark] "+format+"\n", args...)
	}
}
