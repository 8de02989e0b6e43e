package mdec

import "testing"

func TestBitReaderWordOrder(t *testing.T) {
	// Words 0x1234, 0x5678 stored little-endian.
	r := NewBitReader([]byte{0x34, 0x12, 0x78, 0x56}, 0)

	if got := r.ReadBits(4); got != 0x1 {
		t.Errorf("ReadBits(4) = %#x, want 0x1", got)
	}
	if got := r.ReadBits(8); got != 0x23 {
		t.Errorf("ReadBits(8) = %#x, want 0x23", got)
	}
	if got := r.PeekBits(8); got != 0x45 {
		t.Errorf("PeekBits(8) = %#x, want 0x45", got)
	}
	if got := r.ReadBits(12); got != 0x456 {
		t.Errorf("ReadBits(12) = %#x, want 0x456", got)
	}
	if !r.HasMore() {
		t.Fatal("HasMore() = false with 8 bits left")
	}
	if got := r.ReadBits(8); got != 0x78 {
		t.Errorf("ReadBits(8) = %#x, want 0x78", got)
	}
	if r.HasMore() {
		t.Error("HasMore() = true after consuming all input")
	}
	if got := r.ReadBits(5); got != 0 {
		t.Errorf("ReadBits past end = %#x, want 0", got)
	}
}

func TestBitReaderOffsetAndOddLength(t *testing.T) {
	// Header bytes are skipped; a trailing odd byte is the low half of a word.
	r := NewBitReader([]byte{0xFF, 0xFF, 0xAB}, 2)
	if got := r.ReadBits(16); got != 0x00AB {
		t.Errorf("ReadBits(16) = %#x, want 0x00ab", got)
	}
	if r.HasMore() {
		t.Error("HasMore() = true after last word")
	}
}

func TestBitReaderPeekPastEnd(t *testing.T) {
	r := NewBitReader([]byte{0x00, 0xC0}, 0) // 0xC000
	if got := r.PeekBits(32); got != 0xC0000000 {
		t.Errorf("PeekBits(32) = %#x, want 0xc0000000", got)
	}
	r.SkipBits(1)
	if got := r.PeekBits(4); got != 0x8 {
		t.Errorf("PeekBits(4) = %#x, want 0x8", got)
	}
	if got := r.ReadBit(); got != 1 {
		t.Errorf("ReadBit() = %d, want 1", got)
	}
	r.SkipBits(100)
	if r.HasMore() {
		t.Error("HasMore() = true after skipping past end")
	}
}

func TestBitReaderLongStream(t *testing.T) {
	var w bitWriter
	for i := 0; i < 200; i++ {
		w.write(uint32(i%32), 5)
	}
	r := NewBitReader(w.bytes(), 0)
	for i := 0; i < 200; i++ {
		if got := r.ReadBits(5); got != uint32(i%32) {
			t.Fatalf("value %d: got %d, want %d", i, got, i%32)
		}
	}
}

func TestBitReaderEmpty(t *testing.T) {
	r := NewBitReader(nil, 0)
	if r.HasMore() {
		t.Error("HasMore() = true on empty input")
	}
	if got := r.ReadBits(16); got != 0 {
		t.Errorf("ReadBits(16) = %#x, want 0", got)
	}

	r = NewBitReader([]byte{1, 2}, 8)
	if r.HasMore() {
		t.Error("HasMore() = true with offset past end")
	}
}
