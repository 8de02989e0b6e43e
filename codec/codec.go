package codec

// Codec is the interface implemented by every frame decoder
type Codec interface {
	// Decode decodes one compressed frame
	Decode(data []byte, params DecodeParams) (*DecodeResult, error)

	// Name returns the registry name
	Name() string

	// Aliases returns alternative names the codec answers to
	Aliases() []string
}

// DecodeParams contains parameters for decoding
type DecodeParams struct {
	Width   int     // Output width in pixels
	Height  int     // Output height in pixels
	Options Options // Codec-specific options, may be nil
}

// Options is an interface for codec-specific decoding options
type Options interface {
	// Validate checks if the options are valid
	Validate() error
}

// DecodeResult contains the result of decoding
type DecodeResult struct {
	PixelData  []byte // Decoded pixel data, interleaved
	Width      int    // Image width
	Height     int    // Image height
	Components int    // Number of color components
	BitDepth   int    // Bits per sample
	Layout     string // Sample order within a pixel, e.g. "BGR"
}
