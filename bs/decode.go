// Package bs decodes PlayStation BS background frames, the MDEC intra-frame
// format used for pre-rendered camera backgrounds.
//
// A frame is one fixed-size chunk holding an 8-byte header followed by a
// Huffman-coded bitstream. Decode expands it to a BGR24 pixel buffer.
package bs

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-bss-codec/codec"
	"github.com/cocosip/go-bss-codec/mdec"
)

// IDCTMethod selects the inverse DCT implementation.
type IDCTMethod int

const (
	// IDCTFloat is the floating point reference transform.
	IDCTFloat IDCTMethod = iota
	// IDCTFast is the fixed-point AAN transform. Output may differ from
	// IDCTFloat by a few levels where high frequencies are present.
	IDCTFast
)

// String returns the method name.
func (m IDCTMethod) String() string {
	switch m {
	case IDCTFloat:
		return "float"
	case IDCTFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Options contains decoding options for BS frames
type Options struct {
	IDCT IDCTMethod
}

// Validate validates the options
func (o *Options) Validate() error {
	switch o.IDCT {
	case IDCTFloat, IDCTFast:
		return nil
	}
	return errors.Wrapf(codec.ErrInvalidParameter, "idct method %d", int(o.IDCT))
}

func (o *Options) idct() mdec.IDCTFunc {
	if o != nil && o.IDCT == IDCTFast {
		return mdec.IDCTFast
	}
	return mdec.IDCT
}

// Decode decodes one chunk into a width x height BGR24 pixel buffer.
func Decode(chunk []byte, width, height int) (*PixelBuffer, error) {
	return DecodeWithOptions(chunk, width, height, nil)
}

// DecodeWithOptions is Decode with explicit options; nil selects defaults.
func DecodeWithOptions(chunk []byte, width, height int, opts *Options) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
	}

	rl, err := Depack(chunk)
	if err != nil {
		return nil, err
	}
	return DecodeFrame(rl, width, height, opts)
}
