package huffman

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.  Text is handled one rune per Symbol.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is non-negative.
func (s Symbol) IsValid() bool {
	return s >= 0
}

// String returns the string representation of this Symbol, as a quoted rune.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// SymbolsOf splits a string into one Symbol per rune.  It returns
// *InvalidUTF8Error at the first byte that is not part of a valid UTF-8
// encoding, since such bytes cannot survive a round trip through StringOf.
func SymbolsOf(str string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(str))
	for index := 0; index < len(str); {
		ch, size := utf8.DecodeRuneInString(str[index:])
		if ch == utf8.RuneError && size <= 1 {
			return nil, &InvalidUTF8Error{Offset: index, Byte: str[index]}
		}
		out = append(out, Symbol(ch))
		index += size
	}
	return out, nil
}

// StringOf is the inverse of SymbolsOf.
func StringOf(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for index, symbol := range symbols {
		runes[index] = rune(symbol)
	}
	return string(runes)
}
