package cmd

import (
	"errors"
	"fmt"

	"github.com/muhaimin059/dct-watermark/internal/ecc"
	"github.com/muhaimin059/dct-watermark/internal/imgio"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Recover the text payload from a watermarked image",
	Long: `Reads the watermark back out of an image.  The codec parameters and
seeds must match the ones used at embed time; with the wrong seeds the
extraction yields garbage or an uncorrectable-codeword error.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	addCodecFlags(extractCmd)
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	wm, _, err := codecFromFlags()
	if err != nil {
		return err
	}

	img, format, err := imgio.Load(args[0])
	if err != nil {
		return err
	}
	logVerbose("loaded %s (%s, %dx%d)", args[0], format, img.Bounds().Dx(), img.Bounds().Dy())

	text, err := wm.ExtractText(img)
	if errors.Is(err, ecc.ErrUncorrectable) {
		return fmt.Errorf("no recoverable watermark (wrong seeds, wrong parameters, or too much damage): %w", err)
	}
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
