package watermark

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/muhaimin059/dct-watermark/internal/bitbuf"
	"github.com/muhaimin059/dct-watermark/internal/scatter"
)

// ExtractText recovers the text payload from a watermarked image.
func (w *Watermark) ExtractText(img image.Image) (string, error) {
	bits, err := w.ExtractData(img)
	if err != nil {
		return "", err
	}
	return w.decodeText(bits), nil
}

// ExtractData recovers the payload bits from a watermarked image.  The
// result has exactly MaxBitsData bits.  Returns ecc.ErrUncorrectable
// (wrapped) when the mark is damaged beyond the parity budget.
func (w *Watermark) ExtractData(img image.Image) (*bitbuf.Buffer, error) {
	frame := imaging.Clone(img)
	plane, padW, padH := luminancePlane(frame)
	if (padW/coverBlock)*(padH/coverBlock)*coeffsPerBlock < markArea {
		return nil, ErrCoverTooSmall
	}

	stream := w.readMidBand(plane, padW, padH)

	// Undo the dispersal: de-zigzag, unscatter, dequantize + inverse
	// DCT, unscramble.
	dispersed := make([]int, markArea)
	scatter.OneToTwo(stream, dispersed)
	quantized := make([]int, markArea)
	w.permEmbed.Gather(quantized, dispersed)
	scrambled := w.markInverse(quantized)
	mark := make([]int, markArea)
	w.permMark.Gather(mark, scrambled)
	w.dumpRaw("mark-extract.raw", mark)

	raw := w.readCells(mark)
	w.dumpThreshold(mark)

	if w.codec == nil {
		return raw.Slice(0, w.maxBitsData), nil
	}
	data, err := w.codec.Decode(raw.Bytes())
	if err != nil {
		return nil, err
	}
	bits := bitbuf.FromBytes(data)
	w.reportBitErrors(raw, bits)
	return bits, nil
}

// readMidBand collects the four mid-band coefficients of consecutive
// 8×8 blocks, raster order, until the stream is full.
func (w *Watermark) readMidBand(plane []int, padW, padH int) []int {
	stream := make([]int, markArea)
	blk := make([]int, coverBlock*coverBlock)
	ci := 0
	for by := 0; by < padH && ci < markArea; by += coverBlock {
		for bx := 0; bx < padW && ci < markArea; bx += coverBlock {
			gatherBlock(blk, plane, padW, bx, by, coverBlock)
			w.dctCover.Forward(blk, blk)
			for _, pos := range midBand {
				stream[ci] = blk[pos[0]*coverBlock+pos[1]]
				ci++
			}
		}
	}
	return stream
}

// markInverse dequantizes and inverse-transforms every 4×4 block.
func (w *Watermark) markInverse(quantized []int) []int {
	out := make([]int, markArea)
	blk := make([]int, markBlock*markBlock)
	for by := 0; by < markSide; by += markBlock {
		for bx := 0; bx < markSide; bx += markBlock {
			gatherBlock(blk, quantized, markSide, bx, by, markBlock)
			dequantizeBlock(blk)
			w.dctMark.Inverse(blk, blk)
			spreadBlock(out, blk, markSide, bx, by, markBlock)
		}
	}
	return out
}

// readCells averages each BoxSize×BoxSize cell of the reconstructed
// mark and thresholds at 128, yielding maxBitsTotal bits in row-major
// cell order.
func (w *Watermark) readCells(mark []int) *bitbuf.Buffer {
	b := w.cfg.BoxSize
	bits := bitbuf.New(w.maxBitsTotal)
	for cy := 0; cy < w.cells; cy++ {
		for cx := 0; cx < w.cells; cx++ {
			bits.Append(w.cellAverage(mark, cx, cy, b) > 127)
		}
	}
	return bits
}

func (w *Watermark) cellAverage(mark []int, cx, cy, b int) int {
	sum := 0
	for y := cy * b; y < (cy+1)*b; y++ {
		for x := cx * b; x < (cx+1)*b; x++ {
			sum += mark[y*markSide+x]
		}
	}
	return sum / (b * b)
}

// reportBitErrors logs how many payload bits the parity had to repair.
func (w *Watermark) reportBitErrors(raw, corrected *bitbuf.Buffer) {
	if w.cfg.DebugDir == "" {
		return
	}
	errs := 0
	for i := 0; i < w.maxBitsData; i++ {
		if raw.Bit(i) != corrected.Bit(i) {
			errs++
		}
	}
	fmt.Fprintf(os.Stderr, "[dctmark] error correction: %d of %d payload bits were faulty\n", errs, w.maxBitsData)
}
