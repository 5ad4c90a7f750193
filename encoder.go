package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder maps bytes to their Huffman codes.
type Encoder struct {
	codes      [NumSymbols]Code
	numSymbols int
	minSize    byte
	maxSize    byte
}

// Init initializes this Encoder from a frequency table.  The Huffman tree is
// built with BuildTree, so a Decoder initialized from the same table (in any
// entry order) will assign the same codes.
func (e *Encoder) Init(ft FrequencyTable) error {
	tree, err := BuildTree(ft)
	if err != nil {
		return err
	}

	codes := tree.Codes()

	var minSize, maxSize byte
	var numSymbols int
	for symbol := 0; symbol < NumSymbols; symbol++ {
		size := codes[symbol].Size
		if size == 0 {
			continue
		}
		if numSymbols == 0 {
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
		numSymbols++
	}

	*e = Encoder{
		codes:      codes,
		numSymbols: numSymbols,
		minSize:    minSize,
		maxSize:    maxSize,
	}
	return nil
}

// Encode returns the code for a Symbol.  The zero Code is returned for
// symbols that were absent from the frequency table.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// NumSymbols is the number of symbols that have a code.
func (e Encoder) NumSymbols() int {
	return e.numSymbols
}

// CodeTable returns a copy of the code assignments.
func (e Encoder) CodeTable() CodeTable {
	table := make(CodeTable, e.numSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if hc := e.codes[symbol]; hc.Size != 0 {
			table[Symbol(symbol)] = hc
		}
	}
	return table
}

// EncodedBits returns the number of bits EncodeBytes would produce for input,
// or ErrUnmappedSymbol if some byte of input has no code.
func (e Encoder) EncodedBits(input []byte) (uint64, error) {
	var numBits uint64
	for i, b := range input {
		hc := e.codes[b]
		if hc.Size == 0 {
			return 0, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnmappedSymbol, b, i)
		}
		numBits += uint64(hc.Size)
	}
	return numBits, nil
}

// EncodeBytes concatenates the codes for every byte of input and packs them,
// most significant bit first, into a byte slice whose final byte is
// zero-padded.  The number of significant bits is returned alongside, since
// the padding is otherwise indistinguishable from coded zero bits.
func (e Encoder) EncodeBytes(input []byte) (payload []byte, numBits uint64, err error) {
	expectBits, err := e.EncodedBits(input)
	if err != nil {
		return nil, 0, err
	}

	p := newBitPacker(expectBits)
	for _, b := range input {
		if err := p.writeCode(e.codes[b]); err != nil {
			return nil, 0, err
		}
	}
	return p.finish()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(0x%02x) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
