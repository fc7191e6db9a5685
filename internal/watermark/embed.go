package watermark

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/muhaimin059/dct-watermark/internal/bitbuf"
	"github.com/muhaimin059/dct-watermark/internal/scatter"
)

// EmbedText embeds a text payload.  The string is lower-cased, reduced
// to the alphabet and truncated to MaxTextLen before embedding.
func (w *Watermark) EmbedText(img image.Image, text string) (*image.NRGBA, error) {
	return w.Embed(img, w.encodeText(text))
}

// Embed carries data in the luminance channel of img and returns the
// watermarked frame.  Payloads longer than MaxBitsData are truncated,
// shorter ones zero-padded.  The input image is not modified.
func (w *Watermark) Embed(img image.Image, data *bitbuf.Buffer) (*image.NRGBA, error) {
	bits := w.framePayload(data)

	mark := w.paintMark(bits)
	w.dumpRaw("mark-embed.raw", mark)

	// Scramble, transform and quantize the mark, scramble again and
	// linearize: the coefficient stream scattered over the cover.
	scrambled := make([]int, markArea)
	w.permMark.Scatter(scrambled, mark)
	quantized := w.markForward(scrambled)
	dispersed := make([]int, markArea)
	w.permEmbed.Scatter(dispersed, quantized)
	stream := make([]int, markArea)
	scatter.TwoToOne(dispersed, stream)

	out := imaging.Clone(img)
	plane, padW, padH := luminancePlane(out)
	if (padW/coverBlock)*(padH/coverBlock)*coeffsPerBlock < markArea {
		return nil, ErrCoverTooSmall
	}

	w.writeMidBand(plane, padW, padH, stream)
	w.blend(out, plane, padW)
	return out, nil
}

// framePayload sizes data to maxBitsData and appends Reed-Solomon
// parity, yielding exactly maxBitsTotal bits.
func (w *Watermark) framePayload(data *bitbuf.Buffer) *bitbuf.Buffer {
	var bits *bitbuf.Buffer
	if data.Len() > w.maxBitsData {
		bits = data.Slice(0, w.maxBitsData)
	} else {
		bits = data.Clone()
		for bits.Len() < w.maxBitsData {
			bits.Append(false)
		}
	}
	if w.codec == nil {
		return bits
	}
	codeword, err := w.codec.Encode(bits.Bytes())
	if err != nil {
		// Geometry is validated at construction; encoding cannot
		// fail on a well-sized payload.
		panic(err)
	}
	return bitbuf.FromBytes(codeword)
}

// paintMark renders the frame bits as a flat row-major 128×128 bitmap:
// one BoxSize×BoxSize cell of 255s per set bit, row-major cell order.
func (w *Watermark) paintMark(bits *bitbuf.Buffer) []int {
	mark := make([]int, markArea)
	span := w.cells * w.cfg.BoxSize
	for y := 0; y < span; y++ {
		for x := 0; x < span; x++ {
			idx := y/w.cfg.BoxSize*w.cells + x/w.cfg.BoxSize
			if bits.Bit(idx) {
				mark[y*markSide+x] = 255
			}
		}
	}
	return mark
}

// markForward runs the 4×4 DCT and quantizer over every block of the
// scrambled mark.
func (w *Watermark) markForward(mark []int) []int {
	out := make([]int, markArea)
	blk := make([]int, markBlock*markBlock)
	for by := 0; by < markSide; by += markBlock {
		for bx := 0; bx < markSide; bx += markBlock {
			gatherBlock(blk, mark, markSide, bx, by, markBlock)
			w.dctMark.Forward(blk, blk)
			quantizeBlock(blk)
			spreadBlock(out, blk, markSide, bx, by, markBlock)
		}
	}
	return out
}

// writeMidBand replaces the four mid-band coefficients of consecutive
// 8×8 cover blocks, in raster order, with the coefficient stream.
// Blocks past the end of the stream are left untouched.
func (w *Watermark) writeMidBand(plane []int, padW, padH int, stream []int) {
	blk := make([]int, coverBlock*coverBlock)
	ci := 0
	for by := 0; by < padH && ci < markArea; by += coverBlock {
		for bx := 0; bx < padW && ci < markArea; bx += coverBlock {
			gatherBlock(blk, plane, padW, bx, by, coverBlock)
			w.dctCover.Forward(blk, blk)
			for _, pos := range midBand {
				blk[pos[0]*coverBlock+pos[1]] = stream[ci]
				ci++
			}
			w.dctCover.Inverse(blk, blk)
			spreadBlock(plane, blk, padW, bx, by, coverBlock)
		}
	}
}

// blend folds the reconstructed luminance back into the image:
// brightness moves toward plane/255 by Opacity, hue and saturation
// stay.
func (w *Watermark) blend(img *image.NRGBA, plane []int, padW int) {
	bounds := img.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		row := y * img.Stride
		for x := 0; x < bounds.Dx(); x++ {
			off := row + x*4
			h, s, v := rgbToHSB(img.Pix[off], img.Pix[off+1], img.Pix[off+2])
			g := float64(plane[y*padW+x]) / 255
			v = clamp01(v*(1-w.cfg.Opacity) + g*w.cfg.Opacity)
			r8, g8, b8 := hsbToRGB(h, s, v)
			img.Pix[off], img.Pix[off+1], img.Pix[off+2] = r8, g8, b8
		}
	}
}

// luminancePlane extracts HSB brightness (0..255) into a plane padded
// up to multiples of 8; padding cells are zero.
func luminancePlane(img *image.NRGBA) ([]int, int, int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	padW := (width + coverBlock - 1) / coverBlock * coverBlock
	padH := (height + coverBlock - 1) / coverBlock * coverBlock

	plane := make([]int, padW*padH)
	for y := 0; y < height; y++ {
		row := y * img.Stride
		for x := 0; x < width; x++ {
			off := row + x*4
			maxC := img.Pix[off]
			if img.Pix[off+1] > maxC {
				maxC = img.Pix[off+1]
			}
			if img.Pix[off+2] > maxC {
				maxC = img.Pix[off+2]
			}
			plane[y*padW+x] = int(maxC)
		}
	}
	return plane, padW, padH
}

// gatherBlock copies an n×n block at (bx,by) out of a padW-wide plane.
func gatherBlock(dst, plane []int, stride, bx, by, n int) {
	for i := 0; i < n; i++ {
		copy(dst[i*n:(i+1)*n], plane[(by+i)*stride+bx:(by+i)*stride+bx+n])
	}
}

// spreadBlock is the inverse of gatherBlock.
func spreadBlock(plane, src []int, stride, bx, by, n int) {
	for i := 0; i < n; i++ {
		copy(plane[(by+i)*stride+bx:(by+i)*stride+bx+n], src[i*n:(i+1)*n])
	}
}
