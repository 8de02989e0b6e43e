package mdec

// Block positions within a Macroblock, in stream order.
const (
	BlockCb = iota
	BlockCr
	BlockY0
	BlockY1
	BlockY2
	BlockY3
)

// Macroblock holds the six spatial blocks of a 16x16 region in 4:2:0 layout.
type Macroblock [6][64]int

// Decode reads the six blocks of one macroblock from r and transforms each
// with idct.
func (mb *Macroblock) Decode(r *RLReader, idct IDCTFunc) {
	for i := range mb {
		DecodeBlock(r, &mb[i])
		idct(&mb[i])
	}
}

// Render writes the macroblock as 16 rows of 16 BGR pixels into dst, rows
// stride bytes apart.
func (mb *Macroblock) Render(dst []byte, stride int) {
	cb, cr := &mb[BlockCb], &mb[BlockCr]
	for y := 0; y < 16; y++ {
		line := dst[y*stride : y*stride+48]
		for x := 0; x < 16; x++ {
			c := (y>>1)*8 + (x>>1)
			lum := mb[BlockY0+(y>>3)*2+(x>>3)][(y&7)*8+(x&7)]
			b, g, r := YCbCrToBGR(lum, cb[c], cr[c])
			line[x*3+0] = b
			line[x*3+1] = g
			line[x*3+2] = r
		}
	}
}

// YCbCrToBGR converts one signed, zero-centred YCbCr sample to clamped 8-bit
// BGR.
func YCbCrToBGR(y, cb, cr int) (b, g, r byte) {
	rv := y + (1436*cr)>>10
	gv := y - (352*cb+731*cr)>>10
	bv := y + (1815*cb)>>10
	return clamp(bv + 128), clamp(gv + 128), clamp(rv + 128)
}

func clamp(n int) byte {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return byte(n)
}
