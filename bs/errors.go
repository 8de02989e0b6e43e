package bs

import "github.com/pkg/errors"

// Decode errors. Anything else wrong with a bitstream degrades the image
// rather than failing the decode.
var (
	ErrMalformedStream   = errors.New("bs: stream id does not match MDEC magic")
	ErrInvalidDimensions = errors.New("bs: invalid frame dimensions")
	ErrTruncatedStream   = errors.New("bs: stream too short for header")
	ErrEncodeUnsupported = errors.New("bs: encoding is not supported")
)
