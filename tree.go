package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.  Nodes live in a single slice and refer to
// their children by index: the leaves come first, one per table entry in
// ascending Symbol order, followed by the internal nodes in the order they
// were created.  The root is therefore always the last node.
//
// A Tree is never modified after BuildTree returns it.
type Tree struct {
	nodes []treeNode
}

type treeNode struct {
	weight uint64
	left   int32
	right  int32
	symbol Symbol
}

func (n treeNode) isLeaf() bool {
	return n.left < 0
}

// BuildTree constructs the Huffman tree for the given frequency table.
//
// Every leaf is pushed onto a min-priority queue keyed by its count; the two
// lightest nodes are repeatedly popped and joined under a new internal node
// (first pop on the left, second on the right) until a single root remains.
// A table with exactly one entry yields a tree whose root is that leaf.
func BuildTree(ft FrequencyTable) (*Tree, error) {
	if len(ft) == 0 {
		return nil, ErrEmptyInput
	}
	if err := ft.Validate(); err != nil {
		return nil, err
	}

	leaves := ft.sorted()
	numLeaves := len(leaves)

	t := &Tree{nodes: make([]treeNode, 0, 2*numLeaves-1)}
	q := newNodeQueue(numLeaves)
	for _, entry := range leaves {
		index := int32(len(t.nodes))
		t.nodes = append(t.nodes, treeNode{
			weight: uint64(entry.Count),
			left:   -1,
			right:  -1,
			symbol: entry.Symbol,
		})
		q.push(index, uint64(entry.Count))
	}

	for q.Len() > 1 {
		a, aWeight, err := q.popMin()
		if err != nil {
			return nil, err
		}
		b, bWeight, err := q.popMin()
		if err != nil {
			return nil, err
		}

		index := int32(len(t.nodes))
		weight := aWeight + bWeight
		t.nodes = append(t.nodes, treeNode{weight: weight, left: a, right: b})
		q.push(index, weight)
	}

	root, _, err := q.popMin()
	if err != nil {
		return nil, err
	}
	assert.Assertf(int(root) == len(t.nodes)-1, "root %d is not the last node %d", root, len(t.nodes)-1)
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int32 {
	return int32(len(t.nodes)) - 1
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the sum of all leaf counts.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.Root()].weight
}

// Depth returns the length of the longest root-to-leaf path.  A tree
// consisting of a single leaf has depth 0.
func (t *Tree) Depth() int {
	var maxDepth int
	t.walk(func(n treeNode, hc Code) {
		if int(hc.Size) > maxDepth {
			maxDepth = int(hc.Size)
		}
	})
	return maxDepth
}

// Codes returns the code for every symbol in the tree, indexed by Symbol.
// Symbols absent from the tree get the zero Code.
//
// Codes are read off root-to-leaf paths, with 0 for each left edge and 1 for
// each right edge.  A tree with a single leaf has no edges, so that leaf is
// given the one-bit code "0".
func (t *Tree) Codes() [NumSymbols]Code {
	var codes [NumSymbols]Code
	t.walk(func(n treeNode, hc Code) {
		if hc.Size == 0 {
			hc = MakeCode(1, 0)
		}
		codes[n.symbol] = hc
	})
	return codes
}

// walk visits every leaf along with the path leading to it.
func (t *Tree) walk(fn func(n treeNode, hc Code)) {
	type stackItem struct {
		index int32
		hc    Code
	}

	stack := make([]stackItem, 0, t.NumLeaves())
	stack = append(stack, stackItem{index: t.Root()})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes[top.index]
		if n.isLeaf() {
			fn(n, top.hc)
			continue
		}

		assert.Assertf(top.hc.Size < maxBitsPerCode, "Huffman tree deeper than %d bits", maxBitsPerCode)
		stack = append(stack, stackItem{n.right, top.hc.Append(1)})
		stack = append(stack, stackItem{n.left, top.hc.Append(0)})
	}
}
