package bs

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-bss-codec/codec"
)

// Codec implements the codec.Codec interface for BS frames
type Codec struct{}

// NewCodec creates a new BS codec
func NewCodec() *Codec {
	return &Codec{}
}

// Decode decodes one BS chunk
func (c *Codec) Decode(data []byte, params codec.DecodeParams) (*codec.DecodeResult, error) {
	var opts *Options
	if params.Options != nil {
		o, ok := params.Options.(*Options)
		if !ok {
			return nil, errors.Wrapf(codec.ErrInvalidParameter, "options type %T", params.Options)
		}
		opts = o
	}

	pb, err := DecodeWithOptions(data, params.Width, params.Height, opts)
	if err != nil {
		return nil, err
	}

	return &codec.DecodeResult{
		PixelData:  pb.Pix,
		Width:      pb.Width,
		Height:     pb.Height,
		Components: 3,
		BitDepth:   8,
		Layout:     "BGR",
	}, nil
}

// Name returns the registry name
func (c *Codec) Name() string {
	return "bs"
}

// Aliases returns the alternative registry names
func (c *Codec) Aliases() []string {
	return []string{"bss", "mdec-v2"}
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
