// Package bss reads BSS background archives: concatenations of fixed-size
// BS chunks, one per camera frame.
package bss

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/cocosip/go-bss-codec/bs"
)

// Chunk sizes used by BSS archives.
const (
	ChunkSize32K = 0x8000
	ChunkSize64K = 0x10000
)

// DetectChunkSize guesses the chunk size of a dump. A 32K archive carries a
// second stream header at 0x8000; anything else is treated as 64K.
func DetectChunkSize(data []byte) int {
	if len(data) >= ChunkSize32K+bs.HeaderSize &&
		binary.LittleEndian.Uint16(data[ChunkSize32K+2:]) == bs.StreamMagic {
		return ChunkSize32K
	}
	return ChunkSize64K
}

// Split slices data into chunks of chunkSize bytes; 0 detects the size.
// A trailing remainder is kept when it can hold a header. The returned
// chunks alias data.
func Split(data []byte, chunkSize int) ([][]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if chunkSize == 0 {
		chunkSize = DetectChunkSize(data)
	}
	if chunkSize != ChunkSize32K && chunkSize != ChunkSize64K {
		return nil, errors.Wrapf(ErrChunkSize, "%#x", chunkSize)
	}

	chunks := make([][]byte, 0, (len(data)+chunkSize-1)/chunkSize)
	for off := 0; off < len(data); off += chunkSize {
		end := off + chunkSize
		if end > len(data) {
			end = len(data)
		}
		if end-off < bs.HeaderSize {
			break
		}
		chunks = append(chunks, data[off:end:end])
	}
	return chunks, nil
}
