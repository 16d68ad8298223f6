package huffman

// Search returns the Code of symbol in the tree rooted at root.  The tree is
// searched depth-first, left subtree before right.  A synthetic root
// wrapping a single leaf yields the empty Code for that leaf's Symbol.
//
// The second return value is false if no leaf holds symbol.
//
func Search(root *Node, symbol Symbol) (Code, bool) {
	if root == nil {
		return "", false
	}
	if root.IsLeaf() {
		return "", root.symbol == symbol
	}
	if leaf := root.left; root.right == nil && leaf != nil && leaf.IsLeaf() {
		return "", leaf.symbol == symbol
	}

	if path, found := searchPath(root, symbol, make([]byte, 0, 32)); found {
		return Code(path), true
	}
	return "", false
}

func searchPath(n *Node, symbol Symbol, path []byte) ([]byte, bool) {
	if n.IsLeaf() {
		return path, n.symbol == symbol
	}
	if n.left != nil {
		if out, found := searchPath(n.left, symbol, append(path, '0')); found {
			return out, true
		}
	}
	if n.right != nil {
		if out, found := searchPath(n.right, symbol, append(path, '1')); found {
			return out, true
		}
	}
	return path, false
}

// Search returns the Code of symbol, or *SymbolNotFoundError.
func (t *Tree) Search(symbol Symbol) (Code, error) {
	hc, found := Search(t.root, symbol)
	if !found {
		return "", &SymbolNotFoundError{Symbol: symbol}
	}
	return hc, nil
}
