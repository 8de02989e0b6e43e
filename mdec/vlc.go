package mdec

import "math/bits"

// Code is one decoded AC variable-length code.
type Code struct {
	Run   int
	Level int
	Bits  int // bits consumed, sign bit included
	// Clamped is set when the bit pattern fell outside the codebook and the
	// last entry of the length class was used instead.
	Clamped bool
}

const (
	eobRun    = 63
	escapeRaw = 0x200 // level field of the escape entry
)

// IsEOB reports whether c is the end-of-block code.
func (c Code) IsEOB() bool {
	return c.Run == eobRun && c.Level == -escapeRaw
}

// IsEscape reports whether c announces a raw 16-bit run/level word.
func (c Code) IsEscape() bool {
	return c.Run == 0 && c.Level == -escapeRaw
}

// Word packs c as an AC word.
func (c Code) Word() uint16 {
	return PackAC(c.Run, c.Level)
}

type lengthClass struct {
	table []uint32
	shift uint
	base  int
}

// Indexed by the leading zero count of the 32-bit window, minus two.
var lengthClasses = [...]lengthClass{
	{vlcClass0[:], 23, 8},
	{vlcClass0[:], 23, 8},
	{vlcClass0[:], 23, 8},
	{vlcClass0[:], 23, 8},
	{vlcClass1[:], 21, 16},
	{vlcClass2[:], 19, 32},
	{vlcClass3[:], 18, 32},
	{vlcClass4[:], 17, 32},
	{vlcClass5[:], 16, 32},
	{vlcClass6[:], 15, 32},
}

// DecodeNext decodes the next AC code from r and consumes its bits.
func DecodeNext(r *BitReader) Code {
	w := r.PeekBits(32)

	var entry uint32
	clamped := false
	if w>>28 >= 4 {
		entry = vlcFast[int(w>>27)-8]
	} else {
		z := bits.LeadingZeros32(w) - 2
		if z >= len(lengthClasses) {
			z = len(lengthClasses) - 1
		}
		lc := lengthClasses[z]
		idx := int(w>>lc.shift) - lc.base
		if idx < 0 || idx >= len(lc.table) {
			idx = len(lc.table) - 1
			clamped = true
		}
		entry = lc.table[idx]
	}

	c := unpackEntry(entry)
	c.Clamped = clamped
	r.SkipBits(c.Bits)
	return c
}

func unpackEntry(e uint32) Code {
	return Code{
		Run:   int(e>>10) & 0x3F,
		Level: signExtend10(int(e & 0x3FF)),
		Bits:  int(e >> 16),
	}
}
