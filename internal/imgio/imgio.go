// Package imgio opens and saves cover images.  Decoding understands
// png, jpeg, gif, bmp, tiff and webp; saving goes through imaging,
// which picks the encoder from the file extension.
package imgio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path and reports its format name.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return img, format, nil
}

// Save writes img to path.  quality applies to JPEG output; other
// formats ignore it.
func Save(img image.Image, path string, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Writable reports whether Save supports the extension of path.
func Writable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".tif", ".tiff", ".bmp":
		return true
	}
	return false
}
