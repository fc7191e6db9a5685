package watermark

// markQuantSteps is the scalar quantizer for the 4×4 mark DCT blocks.
// Steps grow with frequency; the DC step keeps the cell sign stable
// under the ±1 integer noise a cover round trip adds to the mid-band.
// The values are part of the wire format and pinned by golden tests.
var markQuantSteps = [markBlock * markBlock]int{
	8, 11, 14, 17,
	11, 14, 17, 20,
	14, 17, 20, 23,
	17, 20, 23, 26,
}

// quantizeBlock divides each coefficient by its step, rounding to
// nearest.  Small noise collapses to zero.
func quantizeBlock(blk []int) {
	for i, v := range blk {
		step := markQuantSteps[i]
		if v >= 0 {
			blk[i] = (v + step/2) / step
		} else {
			blk[i] = -((-v + step/2) / step)
		}
	}
}

// dequantizeBlock multiplies each value back by its step.
func dequantizeBlock(blk []int) {
	for i, v := range blk {
		blk[i] = v * markQuantSteps[i]
	}
}
