package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muhaimin059/dct-watermark/internal/hasher"
	"github.com/muhaimin059/dct-watermark/internal/imgio"
	"github.com/muhaimin059/dct-watermark/internal/manifest"
)

// result holds the outcome for one cover.
type result struct {
	key   string
	asset manifest.Asset
	err   error
}

// outputExt picks the saved format: webp covers fall back to jpeg
// because the toolchain only decodes webp.
func outputExt(format string) string {
	switch format {
	case "webp", "gif":
		return "jpeg"
	default:
		return format
	}
}

// process watermarks a single cover: decode, embed, encode, write a
// content-addressed file.
func process(c Cover, cfg Config) result {
	res := result{key: c.Key}

	img, format, err := imgio.Load(c.AbsPath)
	if err != nil {
		res.err = err
		return res
	}

	marked, err := cfg.Mark.EmbedText(img, cfg.Message)
	if err != nil {
		res.err = fmt.Errorf("embed %s: %w", c.RelPath, err)
		return res
	}

	// Ensure the output subdirectory exists.
	keyDir := filepath.Dir(c.Key)
	if keyDir != "." {
		if err := os.MkdirAll(filepath.Join(cfg.OutputDir, keyDir), 0o755); err != nil {
			res.err = err
			return res
		}
	}

	// Write to a staging name first; the final name embeds the
	// content hash of the encoded bytes.
	ext := outputExt(format)
	tmpPath := filepath.Join(cfg.OutputDir, keyDir, fmt.Sprintf(".%s.tmp.%s", filepath.Base(c.Key), ext))
	if err := imgio.Save(marked, tmpPath, cfg.Quality); err != nil {
		res.err = err
		return res
	}
	data, err := os.ReadFile(tmpPath)
	if err != nil {
		res.err = err
		return res
	}

	fileName := fmt.Sprintf("%s.wm.%s.%s", filepath.Base(c.Key), hasher.Short(data), ext)
	relPath := filepath.ToSlash(filepath.Join(keyDir, fileName))
	if err := os.Rename(tmpPath, filepath.Join(cfg.OutputDir, relPath)); err != nil {
		res.err = err
		return res
	}

	bounds := img.Bounds()
	quality := cfg.Quality
	if ext != "jpeg" {
		quality = 0
	}
	res.asset = manifest.Asset{
		Original: manifest.OriginalInfo{
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
			Format: format,
			Size:   c.Size,
		},
		Output: manifest.OutputInfo{
			Path:    relPath,
			Format:  ext,
			Size:    int64(len(data)),
			Hash:    hasher.Sum(data),
			Quality: quality,
		},
	}
	return res
}
