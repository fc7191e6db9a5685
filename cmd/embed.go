package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muhaimin059/dct-watermark/internal/imgio"
	"github.com/muhaimin059/dct-watermark/internal/manifest"
	"github.com/muhaimin059/dct-watermark/internal/pipeline"
	"github.com/muhaimin059/dct-watermark/internal/watermark"
	"github.com/spf13/cobra"
)

var (
	embedMessage string
	embedOut     string
	embedWorkers int
)

var embedCmd = &cobra.Command{
	Use:   "embed <image_or_dir>",
	Short: "Embed a text payload into one image or a directory of images",
	Long: `Embeds a watermark into the given image, or into every image found
under the given directory (png, jpg, jpeg, webp, gif, bmp, tiff).

For a directory, outputs are content-addressed (<key>.wm.<hash>.<ext>)
and a manifest file describes the run.  The payload is lower-cased and
reduced to the 64-character alphabet; anything beyond the capacity of
the configured codec is truncated.`,
	Args: cobra.ExactArgs(1),
	RunE: runEmbed,
}

func init() {
	embedCmd.Flags().StringVarP(&embedMessage, "message", "m", "", "text payload to embed (required)")
	embedCmd.Flags().StringVarP(&embedOut, "out", "o", "", "output file (single image) or directory (batch)")
	embedCmd.Flags().IntVarP(&embedWorkers, "workers", "w", 0, "parallel workers for batch mode (0 = NumCPU)")
	embedCmd.MarkFlagRequired("message")
	addCodecFlags(embedCmd)
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(_ *cobra.Command, args []string) error {
	input := args[0]
	start := time.Now()

	wm, prof, err := codecFromFlags()
	if err != nil {
		return err
	}
	if n := len([]rune(watermark.Normalize(embedMessage))); n > wm.MaxTextLen() {
		fmt.Fprintf(os.Stderr, "[dctmark] warning: payload is %d characters, capacity is %d — truncating\n",
			n, wm.MaxTextLen())
	}

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat %s: %w", input, err)
	}
	if info.IsDir() {
		return runEmbedBatch(input, wm, prof.Name, prof.Quality, start)
	}
	return runEmbedSingle(input, wm, prof.Quality, start)
}

func runEmbedSingle(input string, wm *watermark.Watermark, quality int, start time.Time) error {
	img, format, err := imgio.Load(input)
	if err != nil {
		return err
	}
	logVerbose("loaded %s (%s, %dx%d)", input, format, img.Bounds().Dx(), img.Bounds().Dy())

	marked, err := wm.EmbedText(img, embedMessage)
	if err != nil {
		return err
	}

	out := embedOut
	if out == "" {
		ext := filepath.Ext(input)
		if !imgio.Writable(input) {
			ext = ".jpeg"
		}
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".wm" + ext
	}
	if err := imgio.Save(marked, out, quality); err != nil {
		return err
	}

	chars := len([]rune(watermark.Normalize(embedMessage)))
	if chars > wm.MaxTextLen() {
		chars = wm.MaxTextLen()
	}
	fmt.Printf("  Embedded %d characters into %s (%s)\n",
		chars, out, time.Since(start).Round(time.Millisecond))
	return nil
}

func runEmbedBatch(input string, wm *watermark.Watermark, profName string, quality int, start time.Time) error {
	outDir := embedOut
	if outDir == "" {
		outDir = "./dctmark_out"
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.MkdirAll(absOut, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pipeline.New(pipeline.Config{
		InputDir:  input,
		OutputDir: absOut,
		Message:   embedMessage,
		Mark:      wm,
		Profile:   profName,
		Quality:   quality,
		Workers:   embedWorkers,
		Verbose:   verbose,
	})
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	manifestPath := filepath.Join(absOut, "dctmark.manifest.json")
	if err := manifest.WriteJSON(m, manifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	printBatchReport(m, time.Since(start))
	return nil
}

func printBatchReport(m *manifest.Manifest, elapsed time.Duration) {
	fmt.Println()
	fmt.Printf("  Covers marked:  %d\n", m.Stats.TotalAssets)
	if m.Stats.Failed > 0 {
		fmt.Printf("  Failed:         %d\n", m.Stats.Failed)
	}
	fmt.Printf("  Input size:     %s\n", formatBytes(m.Stats.TotalInputBytes))
	fmt.Printf("  Output size:    %s\n", formatBytes(m.Stats.TotalOutputBytes))
	fmt.Printf("  Time:           %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  Manifest:       dctmark.manifest.json\n")
	fmt.Println()
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
