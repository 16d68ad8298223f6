package huffman

import (
	"strings"
)

// Encode builds a Tree from the frequencies of symbols, then encodes symbols
// with it.  The bitstring is the concatenation of each symbol's Code in
// input order, with no delimiters or padding.
//
// Encode returns ErrEmptyInput if symbols is empty.
//
func Encode(symbols []Symbol, opts ...Option) (string, *Tree, error) {
	ft, err := CountFrequencies(symbols)
	if err != nil {
		return "", nil, err
	}

	t, err := BuildTree(ft, opts...)
	if err != nil {
		return "", nil, err
	}

	bits, err := NewEncoder(t).Encode(symbols)
	if err != nil {
		return "", nil, err
	}

	o := buildOptions(opts)
	o.log.Debug("encoded sequence",
		"symbols", len(symbols),
		"distinct", ft.Len(),
		"bits", len(bits))
	return bits, t, nil
}

// EncodeString is Encode for text, one Symbol per rune.  Text that is not
// valid UTF-8 fails with *InvalidUTF8Error.
func EncodeString(str string, opts ...Option) (string, *Tree, error) {
	symbols, err := SymbolsOf(str)
	if err != nil {
		return "", nil, err
	}
	return Encode(symbols, opts...)
}

// Encoder encodes sequences against a fixed Tree.  Each distinct Symbol is
// searched for once and its Code remembered.
//
// An Encoder is not safe for concurrent use; create one per goroutine.
// The underlying Tree may be shared.
//
type Encoder struct {
	tree  *Tree
	codes map[Symbol]Code
}

// NewEncoder returns an Encoder for t.
func NewEncoder(t *Tree) *Encoder {
	return &Encoder{
		tree:  t,
		codes: make(map[Symbol]Code, t.NumSymbols()),
	}
}

// Tree returns the Tree this Encoder encodes with.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Code returns the Code for one Symbol, or *SymbolNotFoundError.
func (e *Encoder) Code(symbol Symbol) (Code, error) {
	if hc, found := e.codes[symbol]; found {
		return hc, nil
	}
	hc, err := e.tree.Search(symbol)
	if err != nil {
		return "", err
	}
	e.codes[symbol] = hc
	return hc, nil
}

// Encode returns the concatenated Codes of symbols.  It fails with
// *SymbolNotFoundError if any Symbol is missing from the Tree.
func (e *Encoder) Encode(symbols []Symbol) (string, error) {
	var sb strings.Builder
	for _, symbol := range symbols {
		hc, err := e.Code(symbol)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}
