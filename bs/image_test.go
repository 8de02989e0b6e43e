package bs

import (
	"image/color"
	"testing"
)

func TestPixelBufferConversions(t *testing.T) {
	pb := NewPixelBuffer(2, 1)
	copy(pb.Pix, []byte{10, 20, 30, 40, 50, 60})

	if b, g, r := pb.At(1, 0); b != 40 || g != 50 || r != 60 {
		t.Errorf("At(1,0) = %d,%d,%d, want 40,50,60", b, g, r)
	}

	rgb := pb.RGB()
	want := []byte{30, 20, 10, 60, 50, 40}
	for i := range want {
		if rgb[i] != want[i] {
			t.Errorf("RGB()[%d] = %d, want %d", i, rgb[i], want[i])
		}
	}
	if pb.Pix[0] != 10 {
		t.Error("RGB() modified the buffer")
	}

	img := pb.Image()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Image bounds = %v", img.Bounds())
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 30, G: 20, B: 10, A: 255}) {
		t.Errorf("NRGBAAt(0,0) = %v", got)
	}
}
