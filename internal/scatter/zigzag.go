package scatter

// MarkSide is the side length of the mark plane.
const MarkSide = 128

// zigzagIndex[r*MarkSide+c] is the position of cell (r,c) in the scan.
// Built once at init; the scan is the standard JPEG zig-zag extended
// to a 128-wide square, starting right from (0,0), diagonals
// alternating direction.
var zigzagIndex = buildZigzag(MarkSide)

func buildZigzag(n int) []int {
	idx := make([]int, n*n)
	r, c := 0, 0
	up := true
	for i := 0; i < n*n; i++ {
		idx[r*n+c] = i
		if up {
			switch {
			case c == n-1:
				r++
				up = false
			case r == 0:
				c++
				up = false
			default:
				r--
				c++
			}
		} else {
			switch {
			case r == n-1:
				c++
				up = true
			case c == 0:
				r++
				up = true
			default:
				r++
				c--
			}
		}
	}
	return idx
}

// TwoToOne linearizes the row-major 128×128 plane m into v in zig-zag
// order.  Both slices must have length MarkSide².
func TwoToOne(m, v []int) {
	for i, zi := range zigzagIndex {
		v[zi] = m[i]
	}
}

// OneToTwo is the inverse of TwoToOne.
func OneToTwo(v, m []int) {
	for i, zi := range zigzagIndex {
		m[i] = v[zi]
	}
}
