package huffman

import (
	"errors"
)

// Errors returned by this package.  Most are wrapped with additional detail,
// so compare them using errors.Is.
var (
	// ErrEmptyInput is returned when asked to compress zero bytes.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInputTooLarge is returned when a count or the encoded bit length
	// would not fit in the container's 32-bit fields.
	ErrInputTooLarge = errors.New("huffman: input too large")

	// ErrEmptyTable is returned when a container declares zero frequency
	// table entries.
	ErrEmptyTable = errors.New("huffman: empty frequency table")

	// ErrTruncatedStream is returned when a container ends before the
	// data its header promises.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrCorruptStream is returned when a container is structurally
	// complete but self-inconsistent.
	ErrCorruptStream = errors.New("huffman: corrupt stream")

	// ErrUnmappedSymbol is returned when encoding a symbol that has no
	// code in the table.
	ErrUnmappedSymbol = errors.New("huffman: symbol has no code")

	// ErrInvalidBit is returned when a textual bit string contains
	// something other than '0' or '1'.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrEmptyQueue is returned when popping from an empty priority queue.
	ErrEmptyQueue = errors.New("huffman: pop from empty queue")
)
