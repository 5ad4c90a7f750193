package huffman

import (
	"container/heap"
)

// nodeQueue is the min-priority queue used while building a Tree.  Items
// leave in ascending weight order; items of equal weight leave in the order
// they were pushed.  BuildTree pushes leaves in ascending Symbol order, which
// makes the whole construction deterministic for a given set of counts.
type nodeQueue struct {
	h       nodeHeap
	nextSeq uint64
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{h: nodeHeap{list: make([]queueItem, 0, capacity)}}
}

func (q *nodeQueue) Len() int {
	return q.h.Len()
}

// push inserts node with the given weight in O(log n).
func (q *nodeQueue) push(node int32, weight uint64) {
	heap.Push(&q.h, queueItem{node: node, weight: weight, seq: q.nextSeq})
	q.nextSeq++
}

// popMin removes and returns the lowest-weight node.
func (q *nodeQueue) popMin() (node int32, weight uint64, err error) {
	if q.h.Len() == 0 {
		return -1, 0, ErrEmptyQueue
	}
	item := heap.Pop(&q.h).(queueItem)
	return item.node, item.weight, nil
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node   int32
	weight uint64
	seq    uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
