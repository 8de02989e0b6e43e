package mdec

import "sync"

var (
	iqOnce  sync.Once
	iqTable [64]int
)

// BuildIQTable computes the dequantization table: the base matrix scaled by
// the AAN pre-scale factors, rounded, and floored at 1.
func BuildIQTable() [64]int {
	var t [64]int
	for i := range t {
		aan := (aanFactors[i/8]*aanFactors[i%8] + 8192) >> 14
		v := (BaseQuant[i]*aan + 2048) >> 12
		if v < 1 {
			v = 1
		}
		t[i] = v
	}
	return t
}

// IQTable returns the shared dequantization table, built on first use.
// The returned array must not be modified.
func IQTable() *[64]int {
	iqOnce.Do(func() {
		iqTable = BuildIQTable()
	})
	return &iqTable
}
