package mdec

import "math"

// IDCTFunc transforms one block in place from frequency to spatial domain.
type IDCTFunc func(blk *[64]int)

// idctBasis[x][u] = C(u) * cos((2x+1)u*pi/16) / 2, with C(0) = 1/sqrt(2).
var idctBasis = func() (b [8][8]float64) {
	for x := 0; x < 8; x++ {
		for u := 0; u < 8; u++ {
			c := 1.0
			if u == 0 {
				c = 1 / math.Sqrt2
			}
			b[x][u] = c * math.Cos(float64(2*x+1)*float64(u)*math.Pi/16) / 2
		}
	}
	return b
}()

// IDCT is the separable floating point inverse DCT. Rows are transformed
// first, then columns; results are rounded to the nearest integer.
func IDCT(blk *[64]int) {
	var tmp [64]float64

	for y := 0; y < 8; y++ {
		row := blk[y*8 : y*8+8]
		for x := 0; x < 8; x++ {
			var s float64
			for u := 0; u < 8; u++ {
				if row[u] != 0 {
					s += idctBasis[x][u] * float64(row[u])
				}
			}
			tmp[y*8+x] = s
		}
	}

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			var s float64
			for v := 0; v < 8; v++ {
				s += idctBasis[y][v] * tmp[v*8+x]
			}
			blk[y*8+x] = int(math.Round(s))
		}
	}
}
