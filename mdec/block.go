package mdec

// RLReader is a cursor over an RL word stream. Reads past the end return EOB.
type RLReader struct {
	words []uint16
	pos   int
}

// NewRLReader returns a cursor positioned at word pos.
func NewRLReader(words []uint16, pos int) *RLReader {
	return &RLReader{words: words, pos: pos}
}

// Next returns the next word.
func (r *RLReader) Next() uint16 {
	if r.pos >= len(r.words) {
		return EOB
	}
	w := r.words[r.pos]
	r.pos++
	return w
}

// Pos returns the index of the next word.
func (r *RLReader) Pos() int {
	return r.pos
}

// DecodeBlock reads one block run from r and writes its dequantized
// coefficients to blk in natural order.
//
// A run that steps past the last coefficient ends the block at once; the
// word after it is read as the next block's header.
func DecodeBlock(r *RLReader, blk *[64]int) {
	*blk = [64]int{}
	iq := IQTable()

	qscale, dc := Unpack(r.Next())
	blk[0] = iq[0] * dc

	k := 0
	for {
		w := r.Next()
		if w == EOB {
			return
		}
		run, level := Unpack(w)
		k += run + 1
		if k >= 64 {
			return
		}
		zz := ZigZag[k]
		blk[zz] = (iq[zz] * qscale * level) >> 3
	}
}
