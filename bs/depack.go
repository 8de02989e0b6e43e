package bs

import (
	"github.com/cocosip/go-bss-codec/mdec"
)

// Depack expands the Huffman-coded bitstream of chunk into an RL word
// stream: the word count, the stream id, then one run per block.
//
// Running out of input is not an error. Whatever capacity is left is filled
// with EOB words.
func Depack(chunk []byte) ([]uint16, error) {
	h, err := ParseHeader(chunk)
	if err != nil {
		return nil, err
	}

	capacity := h.Capacity()
	out := make([]uint16, capacity)
	if capacity > 0xFFFF {
		out[0] = 0xFFFF
	} else {
		out[0] = uint16(capacity)
	}
	out[1] = StreamMagic

	n := rlPrefix
	br := mdec.NewBitReader(chunk, HeaderSize)

blocks:
	for n < capacity && br.HasMore() {
		qscale := readSignMagnitude(br)
		dc := readSignMagnitude(br)
		if qscale < 0 {
			// Only the magnitude is kept in the header word.
			qscale = -qscale
		}
		out[n] = mdec.PackHeader(qscale, dc)
		n++

		for n < capacity {
			if !br.HasMore() {
				break blocks
			}
			code := mdec.DecodeNext(br)
			switch {
			case code.IsEOB():
				out[n] = mdec.EOB
				n++
				continue blocks
			case code.IsEscape():
				out[n] = uint16(br.ReadBits(16))
			default:
				out[n] = code.Word()
			}
			n++
		}
	}

	for ; n < capacity; n++ {
		out[n] = mdec.EOB
	}
	return out, nil
}

// readSignMagnitude reads a 10-bit magnitude followed by a sign bit.
func readSignMagnitude(br *mdec.BitReader) int {
	v := int(br.ReadBits(10))
	if br.ReadBit() != 0 {
		v = -v
	}
	return v
}
