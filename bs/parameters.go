package bs

import (
	"github.com/cocosip/go-dicom/pkg/imaging/codec"
	"github.com/pkg/errors"
)

// Ensure Parameters implements codec.Parameters
var _ codec.Parameters = (*Parameters)(nil)

// Parameters contains parameters for decoding BS frames through the
// go-dicom codec interface
type Parameters struct {
	// Width and Height override the frame info dimensions when positive
	Width  int
	Height int

	// Fast selects the fixed-point IDCT
	Fast bool

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewParameters creates a new Parameters with default values
func NewParameters() *Parameters {
	return &Parameters{
		params: make(map[string]interface{}),
	}
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case "width":
		return p.Width
	case "height":
		return p.Height
	case "fast":
		return p.Fast
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case "width":
		if v, ok := value.(int); ok {
			p.Width = v
		}
	case "height":
		if v, ok := value.(int); ok {
			p.Height = v
		}
	case "fast":
		if v, ok := value.(bool); ok {
			p.Fast = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate checks if the parameters are valid. Zero sizes are allowed and
// fall back to the frame info.
func (p *Parameters) Validate() error {
	if p.Width < 0 || p.Height < 0 {
		return errors.Wrapf(ErrInvalidDimensions, "parameters %dx%d", p.Width, p.Height)
	}
	return nil
}

// WithSize sets the output size and returns the parameters for chaining
func (p *Parameters) WithSize(width, height int) *Parameters {
	p.Width = width
	p.Height = height
	return p
}

func (p *Parameters) options() *Options {
	if p.Fast {
		return &Options{IDCT: IDCTFast}
	}
	return &Options{IDCT: IDCTFloat}
}
