package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a root-to-leaf path through a Tree.  Each byte is either
// '0' (descend left) or '1' (descend right).  The empty Code is the path to
// the sole symbol of a single-symbol Tree.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code, as the byte '0' or '1'.
func (hc Code) Bit(i int) byte {
	return hc[i]
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc == "" {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

func isBit(ch byte) bool {
	return ch == '0' || ch == '1'
}
