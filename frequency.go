package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each distinct Symbol of a sequence to the number of
// times it occurs.  Symbols() lists them in order of first occurrence.
type FrequencyTable struct {
	order  []Symbol
	counts map[Symbol]uint32
	total  uint64
}

// CountFrequencies builds the FrequencyTable for a non-empty sequence.
// It returns ErrEmptyInput if the sequence is empty, and an error if any
// Symbol is negative.
func CountFrequencies(symbols []Symbol) (FrequencyTable, error) {
	if len(symbols) == 0 {
		return FrequencyTable{}, ErrEmptyInput
	}

	ft := FrequencyTable{counts: make(map[Symbol]uint32)}
	for index, symbol := range symbols {
		if !symbol.IsValid() {
			return FrequencyTable{}, fmt.Errorf("huffman: invalid symbol %d at index %d", int32(symbol), index)
		}
		count, found := ft.counts[symbol]
		if !found {
			ft.order = append(ft.order, symbol)
		}
		if count != ^uint32(0) {
			count++
		}
		ft.counts[symbol] = count
		ft.total++
	}
	return ft, nil
}

// Len returns the number of distinct Symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of symbol, or 0.
func (ft FrequencyTable) Count(symbol Symbol) uint32 {
	return ft.counts[symbol]
}

// Total returns the length of the sequence that was counted.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the distinct Symbols in order of first occurrence.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
