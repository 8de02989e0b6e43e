package bs

import "image"

// PixelBuffer is a decoded frame: Width*Height BGR24 pixels, top row first.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// At returns the pixel at (x, y).
func (p *PixelBuffer) At(x, y int) (b, g, r byte) {
	o := (y*p.Width + x) * 3
	return p.Pix[o], p.Pix[o+1], p.Pix[o+2]
}

// RGB returns a copy of the pixels in RGB order.
func (p *PixelBuffer) RGB() []byte {
	out := make([]byte, len(p.Pix))
	for i := 0; i+2 < len(p.Pix); i += 3 {
		out[i], out[i+1], out[i+2] = p.Pix[i+2], p.Pix[i+1], p.Pix[i]
	}
	return out
}

// Image converts the buffer to an opaque *image.NRGBA.
func (p *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y++ {
		src := p.Pix[y*p.Width*3 : (y+1)*p.Width*3]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < p.Width; x++ {
			dst[x*4+0] = src[x*3+2]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+0]
			dst[x*4+3] = 0xFF
		}
	}
	return img
}
