package watermark

import (
	"fmt"
	"os"
	"path/filepath"
)

// dumpRaw writes a 128×128 plane as an unpadded row-major byte stream
// under DebugDir.  Values are truncated to their low byte, matching
// the historical dump format.  Failures are reported, not fatal.
func (w *Watermark) dumpRaw(name string, plane []int) {
	if w.cfg.DebugDir == "" {
		return
	}
	buf := make([]byte, len(plane))
	for i, v := range plane {
		buf[i] = byte(v)
	}
	path := filepath.Join(w.cfg.DebugDir, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "[dctmark] debug dump %s: %v\n", name, err)
	}
}

// dumpThreshold dumps the black/white view of a reconstructed mark:
// every cell replaced by its thresholded average.
func (w *Watermark) dumpThreshold(mark []int) {
	if w.cfg.DebugDir == "" {
		return
	}
	b := w.cfg.BoxSize
	bw := make([]int, markArea)
	for cy := 0; cy < w.cells; cy++ {
		for cx := 0; cx < w.cells; cx++ {
			v := 0
			if w.cellAverage(mark, cx, cy, b) > 127 {
				v = 255
			}
			for y := cy * b; y < (cy+1)*b; y++ {
				for x := cx * b; x < (cx+1)*b; x++ {
					bw[y*markSide+x] = v
				}
			}
		}
	}
	w.dumpRaw("mark-threshold.raw", bw)
}
