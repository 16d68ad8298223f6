package huffman

// Decode reverses Encode.  Starting at the root, each '0' descends left and
// each '1' descends right; reaching a leaf emits its Symbol and returns to
// the root.
//
// If the bitstring ends part of the way through a code, the result depends
// on the TruncationPolicy: TruncationError (the default) returns the Symbols
// decoded so far together with *TruncatedCodeError, and TruncationTolerate
// drops the incomplete code silently.
//
// A character other than '0' or '1' fails with *InvalidBitError, and a bit
// leading to a missing child fails with *InvalidCodeError.  Both are
// returned along with the Symbols decoded before the failure.
//
// For a single-symbol Tree, whose only Code is empty, the empty bitstring
// decodes to that Symbol repeated as many times as it was counted when the
// Tree was built.  The count belongs to the Tree, not to the bitstring: a
// Tree built from "AAAAA" decodes "" to "AAAAA" even when the caller meant
// some other run of 'A's.  A non-empty bitstring walks the synthetic root
// like any other Tree, so each '0' decodes to one Symbol ("00" is "AA") and
// a '1' fails with *InvalidCodeError.
//
// A nil Tree fails with ErrNilTree.
//
func Decode(bits string, t *Tree, opts ...Option) ([]Symbol, error) {
	if t == nil || t.root == nil {
		return nil, ErrNilTree
	}

	o := buildOptions(opts)
	root := t.Root()

	if bits == "" && t.IsSingleSymbol() {
		leaf := root.left
		out := make([]Symbol, leaf.weight)
		for index := range out {
			out[index] = leaf.symbol
		}
		o.log.Debug("decoded single-symbol sequence", "symbols", len(out))
		return out, nil
	}

	out := make([]Symbol, 0, len(bits)/2+1)
	n := root
	start := 0
	for index := 0; index < len(bits); index++ {
		ch := bits[index]
		if !isBit(ch) {
			return out, &InvalidBitError{Offset: index, Char: ch}
		}

		next := n.child(ch)
		if next == nil {
			return out, &InvalidCodeError{Offset: start, Code: Code(bits[start : index+1])}
		}

		n = next
		if n.IsLeaf() {
			out = append(out, n.symbol)
			n = root
			start = index + 1
		}
	}

	if n != root {
		partial := Code(bits[start:])
		if o.truncation != TruncationTolerate {
			return out, &TruncatedCodeError{Offset: start, Partial: partial}
		}
		o.log.Debug("dropped truncated code", "offset", start, "partial", string(partial))
	}

	o.log.Debug("decoded sequence", "bits", len(bits), "symbols", len(out))
	return out, nil
}

// DecodeString is Decode for text, one rune per Symbol.
func DecodeString(bits string, t *Tree, opts ...Option) (string, error) {
	symbols, err := Decode(bits, t, opts...)
	return StringOf(symbols), err
}
