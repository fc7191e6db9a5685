// Package watermark implements a blind spread-spectrum watermark for
// still images.  A short payload is Reed-Solomon framed, painted into
// a 128×128 binary mark, scrambled by two keyed permutations and
// carried in the mid-band DCT coefficients of the cover's luminance
// channel, where it survives lossy recompression.  Extraction needs
// only the watermarked image and the two seeds.
package watermark

import (
	"errors"
	"fmt"

	"github.com/muhaimin059/dct-watermark/internal/dct"
	"github.com/muhaimin059/dct-watermark/internal/ecc"
	"github.com/muhaimin059/dct-watermark/internal/scatter"
)

const (
	markSide = scatter.MarkSide // 128
	markArea = markSide * markSide

	coverBlock = 8
	markBlock  = 4

	// Mid-band coefficient positions inside an 8×8 cover block, in
	// consumption order: the JPEG-robust anti-diagonal.  Fixed by the
	// wire format.
	coeffsPerBlock = 4
)

var midBand = [coeffsPerBlock][2]int{{1, 4}, {2, 3}, {3, 2}, {4, 1}}

var (
	// ErrInvalidParameters reports a configuration whose derived
	// capacity is unusable.
	ErrInvalidParameters = errors.New("watermark: invalid parameters")

	// ErrCoverTooSmall reports a cover image without enough 8×8
	// blocks to carry the full mark.
	ErrCoverTooSmall = errors.New("watermark: cover too small for mark")
)

// Config holds the codec parameters.  Both sides of a watermark must
// construct from identical values; the seeds act as a shared secret.
type Config struct {
	// BoxSize is the side length in pixels of one bit cell in the
	// mark (bits per mark = ⌊128/BoxSize⌋²).
	BoxSize int

	// ParityBytes is the number of Reed-Solomon parity bytes.  Zero
	// disables error correction.
	ParityBytes int

	// Opacity blends the reconstructed luminance into the original
	// brightness, in [0,1].  1 is the strongest (and most visible)
	// mark.
	Opacity float64

	// SeedEmbed keys the permutation scattering the quantized mark
	// over the cover mid-band.
	SeedEmbed int64

	// SeedMark keys the permutation scrambling the mark bitmap.
	SeedMark int64

	// DebugDir, when non-empty, receives raw dumps of the mark planes
	// and enables bit-error reporting on stderr.
	DebugDir string
}

// DefaultConfig returns the standard parameters: 10px bit cells, 6
// parity bytes, full opacity.
func DefaultConfig() Config {
	return Config{
		BoxSize:     10,
		ParityBytes: 6,
		Opacity:     1.0,
		SeedEmbed:   24,
		SeedMark:    19,
	}
}

// Watermark is an immutable codec handle.  All methods are safe for
// concurrent use; each call allocates its own working buffers.
type Watermark struct {
	cfg Config

	cells        int
	maxBitsTotal int
	maxBitsData  int
	maxTextLen   int

	permMark  scatter.Permutation
	permEmbed scatter.Permutation
	dctCover  *dct.Transform
	dctMark   *dct.Transform
	codec     *ecc.Codec // nil when ParityBytes == 0
}

// New validates cfg and builds the codec.  Permutations and cosine
// tables are generated once here and shared by all calls.
func New(cfg Config) (*Watermark, error) {
	if cfg.BoxSize <= 0 || cfg.BoxSize > markSide {
		return nil, fmt.Errorf("%w: box size %d outside [1,%d]", ErrInvalidParameters, cfg.BoxSize, markSide)
	}
	if cfg.ParityBytes < 0 {
		return nil, fmt.Errorf("%w: negative parity bytes", ErrInvalidParameters)
	}
	if cfg.Opacity < 0 || cfg.Opacity > 1 {
		return nil, fmt.Errorf("%w: opacity %g outside [0,1]", ErrInvalidParameters, cfg.Opacity)
	}

	cells := markSide / cfg.BoxSize
	total := cells * cells
	data := total - 8*cfg.ParityBytes
	if data <= 0 {
		return nil, fmt.Errorf("%w: %d parity bytes leave no payload in %d bits", ErrInvalidParameters, cfg.ParityBytes, total)
	}

	w := &Watermark{
		cfg:          cfg,
		cells:        cells,
		maxBitsTotal: total,
		maxBitsData:  data,
		maxTextLen:   data / 6,
		permMark:     scatter.NewPermutation(cfg.SeedMark, markArea),
		permEmbed:    scatter.NewPermutation(cfg.SeedEmbed, markArea),
		dctCover:     dct.New(coverBlock),
		dctMark:      dct.New(markBlock),
	}

	if cfg.ParityBytes > 0 {
		if total%8 != 0 || data%8 != 0 {
			return nil, fmt.Errorf("%w: box size %d gives a %d/%d bit frame, not byte aligned", ErrInvalidParameters, cfg.BoxSize, data, total)
		}
		codec, err := ecc.NewCodec(data/8, cfg.ParityBytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameters, err)
		}
		w.codec = codec
	}
	return w, nil
}

// Config returns the parameters the codec was built with.
func (w *Watermark) Config() Config { return w.cfg }

// MaxBitsTotal returns the mark capacity including parity bits.
func (w *Watermark) MaxBitsTotal() int { return w.maxBitsTotal }

// MaxBitsData returns the payload capacity in bits.
func (w *Watermark) MaxBitsData() int { return w.maxBitsData }

// MaxTextLen returns the payload capacity in characters.
func (w *Watermark) MaxTextLen() int { return w.maxTextLen }
