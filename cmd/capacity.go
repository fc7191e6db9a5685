package cmd

import (
	"fmt"

	"github.com/muhaimin059/dct-watermark/internal/profile"
	"github.com/muhaimin059/dct-watermark/internal/watermark"
	"github.com/spf13/cobra"
)

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Show payload capacity for the configured codec and all profiles",
	Args:  cobra.NoArgs,
	RunE:  runCapacity,
}

func init() {
	addCodecFlags(capacityCmd)
	rootCmd.AddCommand(capacityCmd)
}

func runCapacity(_ *cobra.Command, _ []string) error {
	wm, prof, err := codecFromFlags()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Configured (%s):\n", prof.Name)
	printCapacity(wm)

	fmt.Println("  Profiles:")
	for _, name := range profile.Names() {
		p := profile.Get(name)
		pw, err := watermark.New(watermark.Config{
			BoxSize:     p.BoxSize,
			ParityBytes: p.Parity,
			Opacity:     p.Opacity,
			SeedEmbed:   flagSeedEmbed,
			SeedMark:    flagSeedMark,
		})
		if err != nil {
			return err
		}
		fmt.Printf("    %-8s  box=%-3d parity=%-3d opacity=%.1f  %3d chars (%d/%d bits)\n",
			name, p.BoxSize, p.Parity, p.Opacity, pw.MaxTextLen(), pw.MaxBitsData(), pw.MaxBitsTotal())
	}
	fmt.Println()
	return nil
}

func printCapacity(wm *watermark.Watermark) {
	fmt.Printf("    Total bits:   %d\n", wm.MaxBitsTotal())
	fmt.Printf("    Payload bits: %d\n", wm.MaxBitsData())
	fmt.Printf("    Characters:   %d\n", wm.MaxTextLen())
	fmt.Println()
}
