package dct

import (
	"math/rand"
	"testing"
)

// Golden 8×8 forward transform of a row-major ramp (0..63).  The
// values pin the orthonormal normalization: a different scaling
// convention changes every coefficient.
func TestForward8Golden(t *testing.T) {
	src := make([]int, 64)
	for i := range src {
		src[i] = i
	}
	want := []int{
		252, -18, 0, -2, 0, -1, 0, 0,
		-146, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-15, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		-1, 0, 0, 0, 0, 0, 0, 0,
	}
	dst := make([]int, 64)
	New(8).Forward(dst, src)
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("coeff %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

// Golden 4×4 transform of a 2×2 checkerboard of 255s.
func TestForward4Golden(t *testing.T) {
	src := []int{
		255, 255, 0, 0,
		255, 255, 0, 0,
		0, 0, 255, 255,
		0, 0, 255, 255,
	}
	want := []int{
		510, 0, 0, 0,
		0, 435, 0, -180,
		0, 0, 0, 0,
		0, -180, 0, 75,
	}
	dst := make([]int, 16)
	New(4).Forward(dst, src)
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("coeff %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestDCOfConstantBlock(t *testing.T) {
	src := make([]int, 16)
	for i := range src {
		src[i] = 255
	}
	dst := make([]int, 16)
	New(4).Forward(dst, src)
	// DC of an all-255 block is 4·255 under orthonormal scaling.
	if dst[0] != 1020 {
		t.Errorf("DC: got %d, want 1020", dst[0])
	}
	for i := 1; i < 16; i++ {
		if dst[i] != 0 {
			t.Errorf("AC %d: got %d, want 0", i, dst[i])
		}
	}
}

func TestRoundTripWithinOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{4, 8} {
		tr := New(n)
		src := make([]int, n*n)
		coef := make([]int, n*n)
		back := make([]int, n*n)
		for trial := 0; trial < 50; trial++ {
			for i := range src {
				src[i] = rng.Intn(256)
			}
			tr.Forward(coef, src)
			tr.Inverse(back, coef)
			for i := range src {
				if d := back[i] - src[i]; d < -1 || d > 1 {
					t.Fatalf("n=%d trial %d index %d: %d -> %d", n, trial, i, src[i], back[i])
				}
			}
		}
	}
}

func TestAliasedBuffers(t *testing.T) {
	tr := New(8)
	src := make([]int, 64)
	for i := range src {
		src[i] = (i * 37) % 256
	}
	sep := make([]int, 64)
	tr.Forward(sep, src)

	alias := make([]int, 64)
	copy(alias, src)
	tr.Forward(alias, alias)
	for i := range sep {
		if alias[i] != sep[i] {
			t.Fatalf("coeff %d: aliased %d, separate %d", i, alias[i], sep[i])
		}
	}
}

func BenchmarkForward8(b *testing.B) {
	tr := New(8)
	src := make([]int, 64)
	for i := range src {
		src[i] = (i * 31) % 256
	}
	dst := make([]int, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Forward(dst, src)
	}
}
