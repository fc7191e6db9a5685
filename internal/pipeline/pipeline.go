// Package pipeline embeds one payload into every cover image under a
// directory, in parallel, and reports the run as a manifest.
package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/muhaimin059/dct-watermark/internal/manifest"
	"github.com/muhaimin059/dct-watermark/internal/watermark"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Message   string
	Mark      *watermark.Watermark
	Profile   string // profile name recorded in the manifest
	Quality   int    // JPEG save quality
	Workers   int
	Verbose   bool
}

// Pipeline orchestrates batch embedding.  A single Watermark handle is
// shared by all workers; it is read-only and each call allocates its
// own buffers.
type Pipeline struct {
	cfg Config
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{cfg: cfg}
}

// Run executes the batch and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	covers, err := ScanCovers(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(covers) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[dctmark] found %d covers\n", len(covers))
	}

	results := make([]result, len(covers))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, c := range covers {
		wg.Add(1)
		go func(idx int, c Cover) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[dctmark] embedding: %s\n", c.Key)
			}
			results[idx] = process(c, p.cfg)
		}(i, c)
	}
	wg.Wait()

	payloadLen := len([]rune(watermark.Normalize(p.cfg.Message)))
	if payloadLen > p.cfg.Mark.MaxTextLen() {
		payloadLen = p.cfg.Mark.MaxTextLen()
	}
	m := manifest.New(p.cfg.Profile, payloadLen)
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
	}

	// Report failures but keep partial output, unless nothing worked.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[dctmark] error: %v\n", e)
		}
		if len(errs) == len(covers) {
			return nil, fmt.Errorf("all %d covers failed", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[dctmark] warning: %d of %d covers had errors\n", len(errs), len(covers))
	}

	m.Stats.Failed = len(errs)
	m.ComputeStats()
	return m, nil
}
