package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Decoder turns a packed Huffman bitstream back into bytes by walking the
// tree one bit at a time.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder from a frequency table.  The table must be
// the one the data was encoded with, though its entries may be in any order.
func (d *Decoder) Init(ft FrequencyTable) error {
	tree, err := BuildTree(ft)
	if err != nil {
		return err
	}
	*d = Decoder{tree: tree}
	return nil
}

// Tree returns the Huffman tree this Decoder walks.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode decodes exactly numBits bits of payload.  Any bits beyond numBits
// are padding and are never read.
//
// The output must contain exactly as many bytes as the frequency table
// counts, and the final code must end on a leaf; otherwise the stream is
// reported as corrupt.
func (d Decoder) Decode(payload []byte, numBits uint64) ([]byte, error) {
	if have := uint64(len(payload)) * 8; have < numBits {
		return nil, fmt.Errorf("%w: %d bits expected, payload holds %d", ErrTruncatedStream, numBits, have)
	}

	expect := d.tree.Weight()
	capacity := expect
	if capacity > numBits {
		capacity = numBits
	}

	st := d.newState(capacity)
	u := newBitUnpacker(payload, numBits)
	for {
		bit, ok, err := u.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		st.step(bit)
		if uint64(len(st.out)) > expect {
			return nil, fmt.Errorf("%w: more than %d symbols in %d bits", ErrCorruptStream, expect, numBits)
		}
	}

	if err := st.finish(); err != nil {
		return nil, err
	}
	if got := uint64(len(st.out)); got != expect {
		return nil, fmt.Errorf("%w: decoded %d symbols, frequency table counts %d", ErrCorruptStream, got, expect)
	}
	return st.out, nil
}

// DecodeString decodes a textual bit string such as "0110", for inspecting
// hand-built or damaged streams.  Characters other than '0' and '1' are
// rejected with ErrInvalidBit.  Unlike Decode, the number of output symbols
// is not checked against the frequency table.
func (d Decoder) DecodeString(bits string) ([]byte, error) {
	st := d.newState(uint64(len(bits)))
	for i := 0; i < len(bits); i++ {
		bit, err := parseBit(bits, i)
		if err != nil {
			return nil, err
		}
		st.step(bit)
	}
	if err := st.finish(); err != nil {
		return nil, err
	}
	return st.out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's tree to
// the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", d.tree.Weight())
	fmt.Fprintf(&buf, "\tDepth() = %d\n", d.tree.Depth())
	fmt.Fprintf(&buf, "\tRoot() = %d\n", d.tree.Root())
	for index, n := range d.tree.nodes {
		if n.isLeaf() {
			fmt.Fprintf(&buf, "\tnode[%d] = leaf(0x%02x, %d)\n", index, byte(n.symbol), n.weight)
		} else {
			fmt.Fprintf(&buf, "\tnode[%d] = internal(%d, %d, %d)\n", index, n.weight, n.left, n.right)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// decodeState is the tree-walking state machine.  pos is either the root
// (no partial code consumed) or the internal node reached so far.
type decodeState struct {
	tree *Tree
	pos  int32
	out  []byte
}

func (d Decoder) newState(capacity uint64) *decodeState {
	return &decodeState{
		tree: d.tree,
		pos:  d.tree.Root(),
		out:  make([]byte, 0, capacity),
	}
}

func (st *decodeState) step(bit uint64) {
	nodes := st.tree.nodes

	// A lone leaf has no edges to follow; every bit stands for one
	// occurrence of its symbol.
	n := nodes[st.pos]
	if n.isLeaf() {
		st.out = append(st.out, byte(n.symbol))
		return
	}

	if bit == 0 {
		st.pos = n.left
	} else {
		st.pos = n.right
	}

	if child := nodes[st.pos]; child.isLeaf() {
		st.out = append(st.out, byte(child.symbol))
		st.pos = st.tree.Root()
	}
}

func (st *decodeState) finish() error {
	if st.pos != st.tree.Root() {
		return fmt.Errorf("%w: bitstream ends inside a code", ErrCorruptStream)
	}
	return nil
}
