package bss

import "github.com/pkg/errors"

var (
	// ErrEmptyInput is returned for a zero-length dump
	ErrEmptyInput = errors.New("bss: empty input")

	// ErrChunkSize is returned for an unsupported chunk size
	ErrChunkSize = errors.New("bss: unsupported chunk size")

	// ErrNoFrames is returned when no chunk could be decoded
	ErrNoFrames = errors.New("bss: no decodable frames")
)
