package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"go.uber.org/multierr"
)

// Tree is a Huffman tree built by BuildTree or Encode.  A Tree is immutable,
// so it may be shared by any number of goroutines once built.
type Tree struct {
	root       *Node
	numSymbols int
	strategy   MergeStrategy
}

// Root returns the root Node.
func (t *Tree) Root() *Node {
	return t.root
}

// NumSymbols returns the number of leaves, i.e. the number of distinct
// Symbols in the sequence the Tree was built from.
func (t *Tree) NumSymbols() int {
	return t.numSymbols
}

// Strategy returns the MergeStrategy the Tree was built with.
func (t *Tree) Strategy() MergeStrategy {
	return t.strategy
}

// IsSingleSymbol returns true iff the Tree has a synthetic root wrapping
// a single leaf.
func (t *Tree) IsSingleSymbol() bool {
	return t.root.left != nil && t.root.right == nil
}

// Codes returns the Code of every Symbol in the Tree.
func (t *Tree) Codes() map[Symbol]Code {
	out := make(map[Symbol]Code, t.numSymbols)
	if t.IsSingleSymbol() {
		out[t.root.left.symbol] = ""
		return out
	}
	t.walk(func(n *Node, path []byte) {
		if n.IsLeaf() {
			out[n.symbol] = Code(path)
		}
	})
	return out
}

// WeightedPathLength returns the sum, over all leaves, of the leaf's weight
// times the length of its Code.  This is the exact length of the bitstring
// produced by encoding the sequence the Tree was built from.
func (t *Tree) WeightedPathLength() uint64 {
	if t.IsSingleSymbol() {
		return 0
	}
	var sum uint64
	t.walk(func(n *Node, path []byte) {
		if n.IsLeaf() {
			sum += uint64(n.weight) * uint64(len(path))
		}
	})
	return sum
}

// walk visits every Node in depth-first order, left before right, passing
// the path from the root.  The path slice is reused between calls.
func (t *Tree) walk(fn func(n *Node, path []byte)) {
	var visit func(n *Node, path []byte)
	visit = func(n *Node, path []byte) {
		if n == nil {
			return
		}
		fn(n, path)
		visit(n.left, append(path, '0'))
		visit(n.right, append(path, '1'))
	}
	visit(t.root, make([]byte, 0, 32))
}

// Validate checks the structural invariants of the Tree and returns every
// violation found.  A Tree returned by BuildTree always validates.
func (t *Tree) Validate() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("huffman: tree has no root")
	}

	var err error
	if t.IsSingleSymbol() {
		if t.root.IsLeaf() || t.root.weight != 1 {
			err = multierr.Append(err, fmt.Errorf("huffman: synthetic root %v must be an internal node of weight 1", t.root))
		}
		if !t.root.left.IsLeaf() {
			err = multierr.Append(err, fmt.Errorf("huffman: synthetic root's child %v must be a leaf", t.root.left))
		}
	}

	seen := make(map[Symbol]struct{}, t.numSymbols)
	t.walk(func(n *Node, path []byte) {
		hasChildren := n.left != nil || n.right != nil
		switch {
		case n.IsLeaf() && hasChildren:
			err = multierr.Append(err, fmt.Errorf("huffman: leaf %v at %q has children", n, path))
		case n.IsLeaf():
			if _, dupe := seen[n.symbol]; dupe {
				err = multierr.Append(err, fmt.Errorf("huffman: symbol %v appears more than once", n.symbol))
			}
			seen[n.symbol] = struct{}{}
		case len(path) == 0 && t.IsSingleSymbol():
			// permitted: synthetic root with only a left child
		case n.left == nil || n.right == nil:
			err = multierr.Append(err, fmt.Errorf("huffman: internal node %v at %q lacks a child", n, path))
		case n.weight != saturatingSum(n.left.weight, n.right.weight):
			err = multierr.Append(err, fmt.Errorf("huffman: internal node %v at %q does not weigh %d + %d",
				n, path, n.left.weight, n.right.weight))
		}
	})

	if len(seen) != t.numSymbols {
		err = multierr.Append(err, fmt.Errorf("huffman: found %d leaves, expected %d", len(seen), t.numSymbols))
	}
	return err
}

func saturatingSum(a, b uint32) uint32 {
	sum := a + b
	if sum < a {
		return ^uint32(0)
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the Tree's structure
// and codes to the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tStrategy() = %v\n", t.strategy)
	fmt.Fprintf(&buf, "\tNumSymbols() = %d\n", t.numSymbols)
	t.walk(func(n *Node, path []byte) {
		fmt.Fprintf(&buf, "\tNode(%q) = %v\n", path, n)
	})

	codes := t.Codes()
	symbols := make(bySymbol, 0, len(codes))
	for symbol := range codes {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()
	for _, symbol := range symbols {
		fmt.Fprintf(&buf, "\tEncode(%v) = %v\n", symbol, codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
