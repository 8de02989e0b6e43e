package bs

import (
	"encoding/binary"
	"strings"
)

// bitWriter packs bits MSB-first into 16-bit little-endian words.
type bitWriter struct {
	words []uint16
	cur   uint16
	n     int
}

func (w *bitWriter) write(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		w.cur = w.cur<<1 | uint16(v>>uint(i)&1)
		w.n++
		if w.n == 16 {
			w.words = append(w.words, w.cur)
			w.cur, w.n = 0, 0
		}
	}
}

func (w *bitWriter) code(s string) {
	for _, c := range strings.ReplaceAll(s, " ", "") {
		w.write(uint32(c-'0'), 1)
	}
}

// signMagnitude writes a 10-bit magnitude and a sign bit.
func (w *bitWriter) signMagnitude(v int) {
	sign := uint32(0)
	if v < 0 {
		sign, v = 1, -v
	}
	w.write(uint32(v), 10)
	w.write(sign, 1)
}

// dcBlock writes a block with the given DC and no AC coefficients.
func (w *bitWriter) dcBlock(dc int) {
	w.signMagnitude(0)
	w.signMagnitude(dc)
	w.code("10")
}

// macroblock writes six DC-only blocks: Cb, Cr, then four luma blocks of y.
func (w *bitWriter) macroblock(y int) {
	w.dcBlock(0)
	w.dcBlock(0)
	for i := 0; i < 4; i++ {
		w.dcBlock(y)
	}
}

// chunk prefixes the bitstream with a header declaring length.
func (w *bitWriter) chunk(length uint16) []byte {
	words := w.words
	if w.n > 0 {
		words = append(words, w.cur<<uint(16-w.n))
	}
	out := make([]byte, HeaderSize, HeaderSize+len(words)*2)
	binary.LittleEndian.PutUint16(out[0:], length)
	binary.LittleEndian.PutUint16(out[2:], StreamMagic)
	binary.LittleEndian.PutUint16(out[4:], 1)
	binary.LittleEndian.PutUint16(out[6:], 2)
	for _, v := range words {
		out = append(out, byte(v), byte(v>>8))
	}
	return out
}
