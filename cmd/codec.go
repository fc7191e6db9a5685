package cmd

import (
	"fmt"

	"github.com/muhaimin059/dct-watermark/internal/keys"
	"github.com/muhaimin059/dct-watermark/internal/profile"
	"github.com/muhaimin059/dct-watermark/internal/watermark"
	"github.com/spf13/cobra"
)

// Codec flags shared by embed and extract.  Profile values apply
// first, explicit flags override, and --passphrase replaces both raw
// seeds.
var (
	flagProfile    string
	flagBoxSize    int
	flagParity     int
	flagOpacity    float64
	flagSeedEmbed  int64
	flagSeedMark   int64
	flagPassphrase string
	flagQuality    int
	flagDebugDir   string
)

func addCodecFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagProfile, "profile", "p", "default", "parameter profile (default, robust, light)")
	c.Flags().IntVar(&flagBoxSize, "box-size", 0, "pixels per bit cell (overrides profile)")
	c.Flags().IntVar(&flagParity, "parity", -1, "Reed-Solomon parity bytes (overrides profile)")
	c.Flags().Float64Var(&flagOpacity, "opacity", -1, "mark opacity 0-1 (overrides profile)")
	c.Flags().Int64Var(&flagSeedEmbed, "seed-embed", 24, "embedding permutation seed")
	c.Flags().Int64Var(&flagSeedMark, "seed-mark", 19, "mark permutation seed")
	c.Flags().StringVar(&flagPassphrase, "passphrase", "", "derive both seeds from a passphrase")
	c.Flags().IntVarP(&flagQuality, "quality", "q", 0, "JPEG save quality 1-100 (overrides profile)")
	c.Flags().StringVar(&flagDebugDir, "debug-dir", "", "directory for raw mark dumps and error counts")
}

// codecFromFlags resolves the profile and overrides into a codec.
func codecFromFlags() (*watermark.Watermark, profile.Profile, error) {
	prof := profile.Get(flagProfile)
	if flagBoxSize > 0 {
		prof.BoxSize = flagBoxSize
	}
	if flagParity >= 0 {
		prof.Parity = flagParity
	}
	if flagOpacity >= 0 {
		prof.Opacity = flagOpacity
	}
	if flagQuality > 0 {
		prof.Quality = flagQuality
	}

	cfg := watermark.Config{
		BoxSize:     prof.BoxSize,
		ParityBytes: prof.Parity,
		Opacity:     prof.Opacity,
		SeedEmbed:   flagSeedEmbed,
		SeedMark:    flagSeedMark,
		DebugDir:    flagDebugDir,
	}
	if flagPassphrase != "" {
		cfg.SeedEmbed, cfg.SeedMark = keys.DeriveSeeds(flagPassphrase)
		logVerbose("seeds derived from passphrase")
	}

	wm, err := watermark.New(cfg)
	if err != nil {
		return nil, prof, fmt.Errorf("configure codec: %w", err)
	}
	logVerbose("codec: box=%d parity=%d opacity=%.2f capacity=%d chars",
		cfg.BoxSize, cfg.ParityBytes, cfg.Opacity, wm.MaxTextLen())
	return wm, prof, nil
}
