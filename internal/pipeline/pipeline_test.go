package pipeline

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/muhaimin059/dct-watermark/internal/imgio"
	"github.com/muhaimin059/dct-watermark/internal/watermark"
)

func writeCover(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 512, 512))
	for y := 0; y < 512; y++ {
		for x := 0; x < 512; x++ {
			img.SetNRGBA(x, y, color.NRGBA{128, 128, 128, 255})
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := imgio.Save(img, path, 0); err != nil {
		t.Fatal(err)
	}
}

func TestScanCovers(t *testing.T) {
	dir := t.TempDir()
	writeCover(t, filepath.Join(dir, "a.png"))
	writeCover(t, filepath.Join(dir, "sub", "b.jpg"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeCover(t, filepath.Join(dir, ".hidden", "c.png"))

	covers, err := ScanCovers(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(covers) != 2 {
		t.Fatalf("found %d covers, want 2", len(covers))
	}
	byKey := map[string]Cover{}
	for _, c := range covers {
		byKey[c.Key] = c
	}
	if c, ok := byKey["a"]; !ok || c.Format != "png" {
		t.Errorf("cover a: %+v", c)
	}
	if c, ok := byKey["sub/b"]; !ok || c.Format != "jpeg" {
		t.Errorf("cover sub/b: %+v", c)
	}
}

func TestRunEmbedsAndReports(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeCover(t, filepath.Join(inDir, "one.png"))
	writeCover(t, filepath.Join(inDir, "nested", "two.png"))

	wm, err := watermark.New(watermark.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	p := New(Config{
		InputDir:  inDir,
		OutputDir: outDir,
		Message:   "batch run",
		Mark:      wm,
		Profile:   "default",
		Quality:   90,
		Workers:   2,
	})
	m, err := p.Run()
	if err != nil {
		t.Fatal(err)
	}

	if m.Stats.TotalAssets != 2 {
		t.Fatalf("assets: got %d, want 2", m.Stats.TotalAssets)
	}
	if m.Stats.Failed != 0 {
		t.Fatalf("failed: %d", m.Stats.Failed)
	}
	for key, a := range m.Assets {
		outPath := filepath.Join(outDir, filepath.FromSlash(a.Output.Path))
		info, err := os.Stat(outPath)
		if err != nil {
			t.Fatalf("asset %s: output missing: %v", key, err)
		}
		if info.Size() != a.Output.Size {
			t.Errorf("asset %s: size mismatch manifest=%d disk=%d", key, a.Output.Size, info.Size())
		}

		// The written file must carry the payload.
		img, _, err := imgio.Load(outPath)
		if err != nil {
			t.Fatal(err)
		}
		got, err := wm.ExtractText(img)
		if err != nil {
			t.Fatalf("asset %s: extract: %v", key, err)
		}
		if got != "batch run" {
			t.Errorf("asset %s: extracted %q", key, got)
		}
	}
}

func TestRunEmptyDir(t *testing.T) {
	wm, err := watermark.New(watermark.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	p := New(Config{InputDir: t.TempDir(), OutputDir: t.TempDir(), Message: "x", Mark: wm})
	if _, err := p.Run(); err == nil {
		t.Error("empty input dir did not error")
	}
}
