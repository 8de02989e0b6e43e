package bs

import (
	"github.com/pkg/errors"

	"github.com/cocosip/go-bss-codec/mdec"
)

// DecodeFrame renders an RL word stream into a width x height BGR24 buffer.
//
// Macroblocks are stored column-major: each 16-pixel-wide column runs from
// the top of the padded frame to the bottom before the next column starts.
// Each column is staged top to bottom, then copied into the destination
// with rows flipped vertically.
func DecodeFrame(rl []uint16, width, height int, opts *Options) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if len(rl) < rlPrefix {
		return nil, errors.Wrapf(ErrTruncatedStream, "%d RL words", len(rl))
	}

	idct := opts.idct()
	padded := (height + 15) &^ 15
	const stageStride = 16 * 3
	stage := make([]byte, padded*stageStride)

	pb := NewPixelBuffer(width, height)
	r := mdec.NewRLReader(rl, rlPrefix)
	var mb mdec.Macroblock

	for x0 := 0; x0 < width; x0 += 16 {
		for y0 := 0; y0 < padded; y0 += 16 {
			mb.Decode(r, idct)
			mb.Render(stage[y0*stageStride:], stageStride)
		}

		cols := width - x0
		if cols > 16 {
			cols = 16
		}
		for y := 0; y < height; y++ {
			src := stage[(height-1-y)*stageStride:]
			dst := pb.Pix[(y*width+x0)*3:]
			copy(dst[:cols*3], src[:cols*3])
		}
	}
	return pb, nil
}
