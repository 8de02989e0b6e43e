// Package mdec implements the PlayStation MDEC intra-frame decode pipeline.
package mdec

// BitReader reads bits MSB-first from a stream of 16-bit little-endian words.
//
// Reads past the end of the buffer return zero bits. HasMore reports false
// once every word of the input has been consumed, which callers treat as an
// implicit end of stream.
type BitReader struct {
	data  []byte
	pos   int    // next byte to load
	acc   uint64 // bit accumulator, valid bits are the low nbits
	nbits int
	left  int // input bits not yet consumed
}

// NewBitReader creates a reader over data starting at byte offset.
func NewBitReader(data []byte, offset int) *BitReader {
	if offset < 0 {
		offset = 0
	}
	if offset > len(data) {
		offset = len(data)
	}
	words := (len(data) - offset + 1) / 2
	return &BitReader{
		data: data,
		pos:  offset,
		left: words * 16,
	}
}

// fill tops up the accumulator with whole words while there is room.
func (r *BitReader) fill() {
	for r.nbits <= 48 && r.pos < len(r.data) {
		w := uint64(r.data[r.pos])
		if r.pos+1 < len(r.data) {
			w |= uint64(r.data[r.pos+1]) << 8
		}
		r.pos += 2
		r.acc = r.acc<<16 | w
		r.nbits += 16
	}
}

// PeekBits returns the next n bits (n <= 32) without consuming them.
func (r *BitReader) PeekBits(n int) uint32 {
	if n <= 0 {
		return 0
	}
	r.fill()
	if r.nbits >= n {
		return uint32(r.acc>>uint(r.nbits-n)) & uint32(1<<uint(n)-1)
	}
	// Exhausted: pad with zero bits on the right.
	v := r.acc & (1<<uint(r.nbits) - 1)
	return uint32(v << uint(n-r.nbits))
}

// SkipBits consumes n bits.
func (r *BitReader) SkipBits(n int) {
	for n > 0 {
		r.fill()
		if r.nbits == 0 {
			r.left = 0
			return
		}
		step := n
		if step > r.nbits {
			step = r.nbits
		}
		r.nbits -= step
		r.acc &= 1<<uint(r.nbits) - 1
		r.left -= step
		n -= step
	}
	if r.left < 0 {
		r.left = 0
	}
}

// ReadBits consumes and returns the next n bits (n <= 32).
func (r *BitReader) ReadBits(n int) uint32 {
	v := r.PeekBits(n)
	r.SkipBits(n)
	return v
}

// ReadBit consumes a single bit.
func (r *BitReader) ReadBit() uint32 {
	return r.ReadBits(1)
}

// HasMore reports whether unread input bits remain.
func (r *BitReader) HasMore() bool {
	return r.left > 0
}
