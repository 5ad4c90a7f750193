package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// maxBitsPerCode is the longest Code that can be represented.  Counts are
// 32-bit, which keeps real Huffman trees well under this depth.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the Size low-order bits, which
	// is the order in which the bits are packed into a stream.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' characters, first bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("huffman: code %q has %d bits, max %d", str, len(str), maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		bit, err := parseBit(str, i)
		if err != nil {
			return Code{}, err
		}
		hc = hc.Append(bit)
	}
	return hc, nil
}

// Append returns this Code extended by one bit.
func (hc Code) Append(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | (bit & 1)}
}

// Bit returns the i'th bit of the sequence, counting from 0.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> (hc.Size - 1 - i)) & 1
}

// HasPrefix reports whether prefix is a leading subsequence of this Code.
// Every Code has itself and the empty Code as prefixes.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each coded Symbol to its Code.
type CodeTable map[Symbol]Code

// String lists the table in ascending Symbol order, one "0xNN:code" pair
// per entry.
func (table CodeTable) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	first := true
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc, found := table[Symbol(symbol)]
		if !found {
			continue
		}
		if !first {
			buf.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&buf, "0x%02x:%s", symbol, hc)
	}
	buf.WriteByte('}')
	return buf.String()
}

func parseBit(str string, i int) (uint64, error) {
	switch str[i] {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, str[i], i)
	}
}
