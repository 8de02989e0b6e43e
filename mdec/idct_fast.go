package mdec

// aanPrescale is the aanFactors outer product in 4.12 fixed point.
var aanPrescale = func() (p [64]int) {
	for i := range p {
		p[i] = (aanFactors[i/8]*aanFactors[i%8] + 1<<15) >> 16
	}
	return p
}()

// IDCTFast is a fixed-point AAN inverse DCT. It trades a small amount of
// precision against IDCT; DC-only blocks reconstruct identically.
func IDCTFast(blk *[64]int) {
	// The butterfly expects coefficients pre-scaled by the AAN factors with
	// five fractional bits.
	for i := range blk {
		if blk[i] != 0 {
			blk[i] = (blk[i]*aanPrescale[i] + 64) >> 7
		}
	}
	for c := 0; c < 8; c++ {
		aan1D(blk, c, 8, 0)
	}
	for r := 0; r < 64; r += 8 {
		aan1D(blk, r, 1, 8)
	}
}

// aan1D runs the 8-point butterfly over blk[off], blk[off+step], ...
// Outputs are rounded and shifted right by shift.
func aan1D(blk *[64]int, off, step int, shift uint) {
	at := func(n int) int { return blk[off+n*step] }

	s0, s1, s2, s3 := at(0), at(1), at(2), at(3)
	s4, s5, s6, s7 := at(4), at(5), at(6), at(7)

	odd1 := s1 + s7
	odd2 := s3 + s5
	b4 := s5 - s3
	b6 := s1 - s7
	b7 := odd1 + odd2
	b3 := s2 + s6

	x4 := ((b6*473 - b4*196 + 128) >> 8) - b7
	x0 := x4 - (((odd1-odd2)*362 + 128) >> 8)
	x1 := s0 - s4
	x2 := (((s2-s6)*362 + 128) >> 8) - b3
	x3 := s0 + s4

	y3 := x1 + x2
	y4 := x3 + b3
	y5 := x1 - x2
	y6 := x3 - b3
	y7 := -x0 - ((b4*473 + b6*196 + 128) >> 8)

	out := [8]int{b7 + y4, x4 + y3, y5 - x0, y6 - y7, y6 + y7, x0 + y5, y3 - x4, y4 - b7}
	var round int
	if shift > 0 {
		round = 1 << (shift - 1)
	}
	for n, v := range out {
		blk[off+n*step] = (v + round) >> shift
	}
}
