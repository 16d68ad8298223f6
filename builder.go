package huffman

import (
	"container/heap"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Tree from a FrequencyTable by repeatedly merging
// the two lightest subtrees.
//
// Leaves start out sorted by ascending count, with ties broken by Symbol
// value so that the same input always produces the same codes.  A table
// with exactly one Symbol yields a synthetic root of weight 1 whose left
// child is the sole leaf and whose right child is absent.
//
func BuildTree(ft FrequencyTable, opts ...Option) (*Tree, error) {
	if ft.Len() == 0 {
		return nil, ErrEmptyInput
	}

	o := buildOptions(opts)

	leaves := make(byWeight, 0, ft.Len())
	for _, symbol := range ft.order {
		leaves = append(leaves, newLeaf(symbol, ft.counts[symbol]))
	}
	leaves.Sort()

	var root *Node
	switch {
	case len(leaves) == 1:
		root = &Node{symbol: InvalidSymbol, weight: 1, left: leaves[0]}
	case o.strategy == MergeHeap:
		root = mergeHeap(leaves)
	default:
		root = mergeDeque(leaves)
	}

	if len(leaves) > 1 {
		assert.Assertf(root.weight == saturatingTotal(ft.Total()),
			"root weight %d does not match %d counted symbols", root.weight, ft.Total())
	}

	t := &Tree{
		root:       root,
		numSymbols: len(leaves),
		strategy:   o.strategy,
	}
	o.log.Debug("built huffman tree",
		"symbols", t.numSymbols,
		"strategy", o.strategy.String(),
		"weight", root.weight)
	return t, nil
}

func saturatingTotal(total uint64) uint32 {
	if total > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(total)
}

// mergeDeque merges subtrees using a double-ended queue.
//
// Each round pops "first" and "second" from the front.  If first is heavier
// than second, first goes to the back and a new first is drawn from the
// front.  The merged node (left = first, right = second) is pushed onto the
// front without being sorted into place.
//
func mergeDeque(leaves []*Node) *Node {
	dq := newNodeDeque(leaves)
	for dq.Len() > 1 {
		first := dq.PopFront()
		second := dq.PopFront()
		if first.weight > second.weight {
			dq.PushBack(first)
			first = dq.PopFront()
		}
		dq.PushFront(newInternal(first, second))
	}
	return dq.PopFront()
}

// mergeHeap merges subtrees using a min-heap keyed on (weight, seq).
func mergeHeap(leaves []*Node) *Node {
	h := nodeHeap{list: make([]seqNode, 0, len(leaves))}
	var seq uint
	for _, leaf := range leaves {
		h.list = append(h.list, seqNode{leaf, seq})
		seq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(seqNode)
		b := heap.Pop(&h).(seqNode)
		heap.Push(&h, seqNode{newInternal(a.node, b.node), seq})
		seq++
	}
	return heap.Pop(&h).(seqNode).node
}

// type nodeDeque {{{

// nodeDeque is a double-ended queue of subtrees.  PushFront is only ever
// called after at least one PopFront, so it reuses the slot freed at the
// head instead of shifting the slice.
type nodeDeque struct {
	list []*Node
	head int
}

func newNodeDeque(nodes []*Node) *nodeDeque {
	list := make([]*Node, len(nodes), len(nodes)+1)
	copy(list, nodes)
	return &nodeDeque{list: list}
}

func (dq *nodeDeque) Len() int {
	return len(dq.list) - dq.head
}

func (dq *nodeDeque) PopFront() *Node {
	assert.Assertf(dq.Len() > 0, "PopFront on empty deque")
	n := dq.list[dq.head]
	dq.list[dq.head] = nil
	dq.head++
	return n
}

func (dq *nodeDeque) PushFront(n *Node) {
	assert.Assertf(dq.head > 0, "PushFront without a free slot: head=%d", dq.head)
	dq.head--
	dq.list[dq.head] = n
}

func (dq *nodeDeque) PushBack(n *Node) {
	dq.list = append(dq.list, n)
}

// }}}

// type seqNode + type nodeHeap {{{

type seqNode struct {
	node *Node
	seq  uint
}

type nodeHeap struct {
	list []seqNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// type byWeight {{{

type byWeight []*Node

func (list byWeight) Len() int {
	return len(list)
}

func (list byWeight) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.symbol < b.symbol
}

func (list byWeight) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byWeight(nil)

// }}}
