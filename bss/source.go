package bss

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

// Load reads a whole dump from r. Zstandard and LZ4 frame streams are
// decompressed transparently.
func Load(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	// A dump shorter than four bytes matches no magic and is read as is.
	magic, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "read magic")
	}

	var data []byte
	switch {
	case bytes.Equal(magic, zstdMagic):
		var dec *zstd.Decoder
		dec, err = zstd.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		defer dec.Close()
		data, err = io.ReadAll(dec)
		err = errors.Wrap(err, "zstd")
	case bytes.Equal(magic, lz4Magic):
		data, err = io.ReadAll(lz4.NewReader(br))
		err = errors.Wrap(err, "lz4")
	default:
		data, err = io.ReadAll(br)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	return data, nil
}

// LoadFile opens and loads the dump at path.
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
