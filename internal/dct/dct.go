// Package dct implements the orthonormal 2D type-II DCT for the two
// square block sizes the watermark uses: 8 for the cover luminance and
// 4 for the mark.
//
// The cosine basis is precomputed once per size as a dense matrix, so
// a transform is two matrix products: F = C·x·Cᵀ, x = Cᵀ·F·C.  Inputs
// and outputs are integers; outputs are rounded to nearest, which
// keeps the round-trip within ±1 on [0,255] blocks.
package dct

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Transform is a forward/inverse DCT pair for one block size.  It is
// read-only after construction and safe for concurrent use.
type Transform struct {
	n  int
	c  *mat.Dense // cosine basis, n×n
	ct *mat.Dense // its transpose
}

// New returns a Transform for n×n blocks.
func New(n int) *Transform {
	c := mat.NewDense(n, n, nil)
	for u := 0; u < n; u++ {
		// 1/√N on the DC row, √(2/N) elsewhere.
		cu := math.Sqrt(2.0 / float64(n))
		if u == 0 {
			cu = math.Sqrt(1.0 / float64(n))
		}
		for x := 0; x < n; x++ {
			c.Set(u, x, cu*math.Cos(float64(2*x+1)*float64(u)*math.Pi/float64(2*n)))
		}
	}
	t := &Transform{n: n, c: c, ct: mat.DenseCopyOf(c.T())}
	return t
}

// Size returns the block side length.
func (t *Transform) Size() int { return t.n }

// Forward computes the DCT of the n×n row-major block src into dst,
// rounding each coefficient to the nearest integer.  src and dst may
// alias.
func (t *Transform) Forward(dst, src []int) {
	t.apply(dst, src, t.c, t.ct)
}

// Inverse computes the inverse DCT of the n×n row-major coefficient
// block src into dst, rounding each sample to the nearest integer.
func (t *Transform) Inverse(dst, src []int) {
	t.apply(dst, src, t.ct, t.c)
}

func (t *Transform) apply(dst, src []int, left, right *mat.Dense) {
	n := t.n
	x := mat.NewDense(n, n, nil)
	for i, v := range src[:n*n] {
		x.Set(i/n, i%n, float64(v))
	}
	var tmp, out mat.Dense
	tmp.Mul(left, x)
	out.Mul(&tmp, right)
	for i := range dst[:n*n] {
		dst[i] = int(math.Round(out.At(i/n, i%n)))
	}
}
