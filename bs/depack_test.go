package bs

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/cocosip/go-bss-codec/mdec"
)

func TestDepackBlock(t *testing.T) {
	var w bitWriter
	w.signMagnitude(5)  // qscale
	w.signMagnitude(-3) // dc
	w.code("11 0")      // run 0 level 1
	w.code("011 1")     // run 1 level -1
	w.code("000001")    // escape
	w.write(0x1C05, 16) // run 7 level 5
	w.code("0100 0")    // run 0 level 2
	w.code("10")        // EOB

	rl, err := Depack(w.chunk(0))
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}

	want := []uint16{16, 0x3800, 0x17FD, 0x0001, 0x07FF, 0x1C05, 0x0002, mdec.EOB}
	// The zero bits padding the last word read as one more empty header.
	want = append(want, 0x0000)
	for len(want) < 16 {
		want = append(want, mdec.EOB)
	}

	if len(rl) != len(want) {
		t.Fatalf("len(rl) = %d, want %d", len(rl), len(want))
	}
	for i := range want {
		if rl[i] != want[i] {
			t.Errorf("rl[%d] = %#04x, want %#04x", i, rl[i], want[i])
		}
	}
}

func TestDepackQscaleSignDropped(t *testing.T) {
	var w bitWriter
	w.signMagnitude(-9)
	w.signMagnitude(4)
	w.code("10")

	rl, err := Depack(w.chunk(0))
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}
	if rl[2] != mdec.PackHeader(9, 4) {
		t.Errorf("header word = %#04x, want %#04x", rl[2], mdec.PackHeader(9, 4))
	}
	if rl[3] != mdec.EOB {
		t.Errorf("rl[3] = %#04x, want EOB", rl[3])
	}
}

func TestDepackCapacityReached(t *testing.T) {
	var w bitWriter
	w.signMagnitude(1)
	w.signMagnitude(0)
	for i := 0; i < 20; i++ {
		w.code("11 0")
	}

	rl, err := Depack(w.chunk(0))
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}
	if len(rl) != 16 {
		t.Fatalf("len(rl) = %d, want 16", len(rl))
	}
	for i := 3; i < 16; i++ {
		if rl[i] != 0x0001 {
			t.Errorf("rl[%d] = %#04x, want 0x0001", i, rl[i])
		}
	}
}

func TestDepackWordCount(t *testing.T) {
	var w bitWriter
	w.dcBlock(0)

	rl, err := Depack(w.chunk(100))
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}
	if len(rl) != 200 || rl[0] != 200 || rl[1] != StreamMagic {
		t.Errorf("len %d, prefix %#04x %#04x", len(rl), rl[0], rl[1])
	}

	rl, err = Depack(w.chunk(0x9000))
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}
	if rl[0] != 0xFFFF {
		t.Errorf("word count = %#04x, want 0xffff", rl[0])
	}
	if rl[len(rl)-1] != mdec.EOB {
		t.Errorf("last word = %#04x, want EOB", rl[len(rl)-1])
	}
}

func TestDepackTruncatedMidBlock(t *testing.T) {
	var w bitWriter
	w.signMagnitude(2)
	w.signMagnitude(7)
	w.code("11 0")
	w.code("0000 00") // a long code cut off by the end of input

	rl, err := Depack(w.chunk(0))
	if err != nil {
		t.Fatalf("Depack failed: %v", err)
	}
	if rl[2] != mdec.PackHeader(2, 7) || rl[3] != 0x0001 {
		t.Errorf("rl[2:4] = %#04x %#04x", rl[2], rl[3])
	}
	for i := 5; i < len(rl); i++ {
		if rl[i] != mdec.EOB {
			t.Errorf("rl[%d] = %#04x, want EOB", i, rl[i])
		}
	}
}

func TestDepackErrors(t *testing.T) {
	if _, err := Depack([]byte{1, 2, 3}); !errors.Is(err, ErrTruncatedStream) {
		t.Errorf("short chunk error = %v, want %v", err, ErrTruncatedStream)
	}
	bad := []byte{0, 0, 0x34, 0x12, 0, 0, 0, 0, 0xFF, 0xFF}
	if _, err := Depack(bad); !errors.Is(err, ErrMalformedStream) {
		t.Errorf("bad magic error = %v, want %v", err, ErrMalformedStream)
	}
}
