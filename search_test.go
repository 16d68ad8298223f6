package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "HUFFMAN")
	for symbol, want := range tree.Codes() {
		got, found := Search(tree.Root(), symbol)
		assert.True(t, found, "Search(%v)", symbol)
		assert.Equal(t, want, got, "Search(%v)", symbol)
	}

	_, found := Search(tree.Root(), 'Z')
	assert.False(t, found)

	_, found = Search(nil, 'A')
	assert.False(t, found)
}

func TestSearch_LeafRoot(t *testing.T) {
	t.Parallel()

	leaf := newLeaf('A', 3)

	hc, found := Search(leaf, 'A')
	assert.True(t, found)
	assert.Equal(t, Code(""), hc)

	_, found = Search(leaf, 'B')
	assert.False(t, found)
}

func TestSearch_SingleSymbol(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "AAAAA")

	hc, err := tree.Search('A')
	require.NoError(t, err)
	assert.Equal(t, Code(""), hc)

	_, err = tree.Search('B')
	var notFound *SymbolNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, Symbol('B'), notFound.Symbol)
	assert.EqualError(t, err, "huffman: symbol 'B' not present in tree")
}
