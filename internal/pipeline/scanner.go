package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Cover is a discovered source image.
type Cover struct {
	AbsPath string // absolute path on disk
	RelPath string // path relative to the input dir
	Key     string // relpath without extension, forward slashes
	Format  string // normalized format name (jpeg, png, ...)
	Size    int64
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".bmp":  true,
	".tiff": true,
	".tif":  true,
}

// ScanCovers walks inputDir and returns every image file found,
// skipping hidden directories.
func ScanCovers(inputDir string) ([]Cover, error) {
	var covers []Cover

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && d.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !imageExtensions[ext] {
			return nil
		}

		relPath, err := filepath.Rel(inputDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		covers = append(covers, Cover{
			AbsPath: path,
			RelPath: filepath.ToSlash(relPath),
			Key:     filepath.ToSlash(strings.TrimSuffix(relPath, ext)),
			Format:  normalizeFormat(ext),
			Size:    info.Size(),
		})
		return nil
	})

	return covers, err
}

func normalizeFormat(ext string) string {
	switch f := strings.TrimPrefix(ext, "."); f {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	default:
		return f
	}
}
