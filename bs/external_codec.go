package bs

import (
	"fmt"

	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/cocosip/go-dicom/pkg/imaging/imagetypes"
	"github.com/pkg/errors"
)

// ExternalCodec adapts the BS decoder to go-dicom's pixel data interfaces.
// Source frames are BS chunks; decoded frames are interleaved 8-bit RGB.
type ExternalCodec struct {
	defaultWidth  int
	defaultHeight int
}

// NewExternalCodec creates an adapter that falls back to the given size when
// neither the parameters nor the frame info carry one.
func NewExternalCodec(defaultWidth, defaultHeight int) *ExternalCodec {
	return &ExternalCodec{
		defaultWidth:  defaultWidth,
		defaultHeight: defaultHeight,
	}
}

// Name returns the codec name
func (c *ExternalCodec) Name() string {
	return fmt.Sprintf("PSX BS (MDEC) %dx%d", c.defaultWidth, c.defaultHeight)
}

// GetDefaultParameters returns the default codec parameters
func (c *ExternalCodec) GetDefaultParameters() codec.Parameters {
	return NewParameters().WithSize(c.defaultWidth, c.defaultHeight)
}

// Encode is not supported
func (c *ExternalCodec) Encode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	return ErrEncodeUnsupported
}

// Decode decodes every BS frame of oldPixelData and appends RGB frames to
// newPixelData
func (c *ExternalCodec) Decode(oldPixelData imagetypes.PixelData, newPixelData imagetypes.PixelData, parameters codec.Parameters) error {
	if oldPixelData == nil || newPixelData == nil {
		return errors.New("source and destination PixelData cannot be nil")
	}

	width, height, opts, err := c.resolve(oldPixelData.GetFrameInfo(), parameters)
	if err != nil {
		return err
	}

	frameCount := oldPixelData.FrameCount()
	for frameIndex := 0; frameIndex < frameCount; frameIndex++ {
		frameData, err := oldPixelData.GetFrame(frameIndex)
		if err != nil {
			return errors.Wrapf(err, "failed to get frame %d", frameIndex)
		}

		pb, err := DecodeWithOptions(frameData, width, height, opts)
		if err != nil {
			return errors.Wrapf(err, "BS decode failed for frame %d", frameIndex)
		}

		if err := newPixelData.AddFrame(pb.RGB()); err != nil {
			return errors.Wrapf(err, "failed to add decoded frame %d", frameIndex)
		}
	}

	if info := newPixelData.GetFrameInfo(); info != nil {
		info.Width = uint16(width)
		info.Height = uint16(height)
		info.BitsAllocated = 8
		info.BitsStored = 8
		info.HighBit = 7
		info.SamplesPerPixel = 3
		info.PixelRepresentation = 0
		info.PlanarConfiguration = 0
		info.PhotometricInterpretation = "RGB"
	}
	return nil
}

// resolve picks the output size and decode options. Parameters win over the
// frame info, which wins over the adapter defaults.
func (c *ExternalCodec) resolve(info *imagetypes.FrameInfo, parameters codec.Parameters) (int, int, *Options, error) {
	width, height := c.defaultWidth, c.defaultHeight
	if info != nil {
		if info.Width > 0 {
			width = int(info.Width)
		}
		if info.Height > 0 {
			height = int(info.Height)
		}
	}

	opts := &Options{}
	if p, ok := parameters.(*Parameters); ok && p != nil {
		if err := p.Validate(); err != nil {
			return 0, 0, nil, err
		}
		if p.Width > 0 {
			width = p.Width
		}
		if p.Height > 0 {
			height = p.Height
		}
		opts = p.options()
	} else if parameters != nil {
		if v, ok := parameters.GetParameter("width").(int); ok && v > 0 {
			width = v
		}
		if v, ok := parameters.GetParameter("height").(int); ok && v > 0 {
			height = v
		}
		if v, ok := parameters.GetParameter("fast").(bool); ok && v {
			opts.IDCT = IDCTFast
		}
	}
	return width, height, opts, nil
}
