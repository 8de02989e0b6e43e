package mdec

import "strings"

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

// writeString writes a string of '0' and '1' characters; spaces are ignored.
func (w *bitWriter) writeString(s string) {
	for _, c := range strings.ReplaceAll(s, " ", "") {
		if c == '1' {
			w.write(1, 1)
		} else {
			w.write(0, 1)
		}
	}
}

func (w *bitWriter) bytes() []byte {
	words := w.words
	if w.n > 0 {
		words = append(words, w.cur<<uint(16-w.n))
	}
	out := make([]byte, 0, len(words)*2)
	for _, v := range words {
		out = append(out, byte(v), byte(v>>8))
	}
	return out
}
