package bs

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	// HeaderSize is the size of the chunk header in bytes.
	HeaderSize = 8

	// StreamMagic is the stream id every chunk header must carry.
	StreamMagic uint16 = 0x3800

	minCapacity = 16
	rlPrefix    = 2 // word count and stream id
)

// Header is the fixed chunk header.
type Header struct {
	Length  uint16 // declared RL length, see Capacity
	Magic   uint16
	Quant   uint16
	Version uint16
}

// ParseHeader reads and validates the chunk header.
func ParseHeader(chunk []byte) (Header, error) {
	if len(chunk) < HeaderSize {
		return Header{}, errors.Wrapf(ErrTruncatedStream, "%d bytes", len(chunk))
	}
	h := Header{
		Length:  binary.LittleEndian.Uint16(chunk[0:]),
		Magic:   binary.LittleEndian.Uint16(chunk[2:]),
		Quant:   binary.LittleEndian.Uint16(chunk[4:]),
		Version: binary.LittleEndian.Uint16(chunk[6:]),
	}
	if h.Magic != StreamMagic {
		return h, errors.Wrapf(ErrMalformedStream, "stream id 0x%04x", h.Magic)
	}
	return h, nil
}

// Capacity returns the number of RL words the depacker produces for this
// chunk, prefix words included.
func (h Header) Capacity() int {
	c := int(h.Length) * 2
	if c < minCapacity {
		c = minCapacity
	}
	return c
}
