package huffman

import (
	"fmt"
)

// Node is a vertex of a Tree: either a leaf holding one Symbol, or an
// internal merge point.  Nodes are owned by their parent and never change
// after the Tree is built.
type Node struct {
	symbol Symbol
	weight uint32
	left   *Node
	right  *Node
}

func newLeaf(symbol Symbol, weight uint32) *Node {
	return &Node{symbol: symbol, weight: weight}
}

func newInternal(left *Node, right *Node) *Node {
	weight := saturatingSum(left.weight, right.weight)
	return &Node{symbol: InvalidSymbol, weight: weight, left: left, right: right}
}

// Symbol returns the Symbol held by this Node.  The second return value is
// false for internal nodes.
func (n *Node) Symbol() (Symbol, bool) {
	if n.symbol < 0 {
		return InvalidSymbol, false
	}
	return n.symbol, true
}

// Weight returns the frequency of a leaf, or the combined frequency of an
// internal node's children.
func (n *Node) Weight() uint32 {
	return n.weight
}

// Left returns the left ('0') child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right ('1') child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff this Node holds a Symbol.
func (n *Node) IsLeaf() bool {
	return n.symbol >= 0
}

// String returns "'A'(5)" for a leaf and "#7" for an internal node.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%v(%d)", n.symbol, n.weight)
	}
	return fmt.Sprintf("#%d", n.weight)
}

var _ fmt.Stringer = (*Node)(nil)

// child returns the child selected by bit, which must be '0' or '1'.
func (n *Node) child(bit byte) *Node {
	if bit == '0' {
		return n.left
	}
	return n.right
}
