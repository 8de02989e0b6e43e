package mdec

// EOB terminates every block run in an RL word stream.
const EOB uint16 = 0xFE00

// PackHeader packs a block header word: a 6-bit quantizer scale and a signed
// 10-bit DC coefficient.
func PackHeader(qscale int, dc int) uint16 {
	return uint16(qscale&0x3F)<<10 | uint16(dc&0x3FF)
}

// PackAC packs a run/level pair into an AC word.
func PackAC(run, level int) uint16 {
	return uint16(run&0x3F)<<10 | uint16(level&0x3FF)
}

// Unpack splits a header or AC word into its 6-bit high field and signed
// 10-bit low field.
func Unpack(w uint16) (hi, lo int) {
	return int(w >> 10), signExtend10(int(w & 0x3FF))
}

func signExtend10(v int) int {
	if v&0x200 != 0 {
		return v - 0x400
	}
	return v
}
