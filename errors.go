package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a Tree is requested for an empty sequence.
var ErrEmptyInput = errors.New("huffman: input sequence is empty")

// ErrCorruptInput is matched (via errors.Is) by every error that Decode
// returns for a bitstring that does not fit the Tree.
var ErrCorruptInput = errors.New("huffman: corrupt input")

// ErrInvalidUTF8 is matched (via errors.Is) by *InvalidUTF8Error.
var ErrInvalidUTF8 = errors.New("huffman: text is not valid UTF-8")

// ErrNilTree is returned when a nil *Tree is passed to Decode.
var ErrNilTree = errors.New("huffman: nil tree")

// InvalidUTF8Error is returned when text passed to SymbolsOf or EncodeString
// contains a byte that does not belong to a valid UTF-8 sequence.
type InvalidUTF8Error struct {
	Offset int
	Byte   byte
}

func (err *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("huffman: invalid UTF-8 byte 0x%02x at offset %d", err.Byte, err.Offset)
}

func (err *InvalidUTF8Error) Unwrap() error {
	return ErrInvalidUTF8
}

// SymbolNotFoundError is returned when a Symbol has no leaf in the Tree.
// This means the sequence being encoded is not the one the Tree was built
// from.
type SymbolNotFoundError struct {
	Symbol Symbol
}

func (err *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("huffman: symbol %v not present in tree", err.Symbol)
}

// TruncatedCodeError is returned when a bitstring ends in the middle of a
// code.  Offset is the index of the first bit of the incomplete code, and
// Partial holds the bits consumed after it.
type TruncatedCodeError struct {
	Offset  int
	Partial Code
}

func (err *TruncatedCodeError) Error() string {
	return fmt.Sprintf("huffman: input ends mid-code at offset %d after %d bit(s) %v",
		err.Offset, err.Partial.Len(), err.Partial)
}

func (err *TruncatedCodeError) Unwrap() error {
	return ErrCorruptInput
}

// InvalidBitError is returned when a bitstring contains a character other
// than '0' or '1'.
type InvalidBitError struct {
	Offset int
	Char   byte
}

func (err *InvalidBitError) Error() string {
	return fmt.Sprintf("huffman: invalid bit %q at offset %d", err.Char, err.Offset)
}

func (err *InvalidBitError) Unwrap() error {
	return ErrCorruptInput
}

// InvalidCodeError is returned when a bit leads to a child that does not
// exist.  Only the synthetic root of a single-symbol Tree lacks a child.
type InvalidCodeError struct {
	Offset int
	Code   Code
}

func (err *InvalidCodeError) Error() string {
	return fmt.Sprintf("huffman: code %v at offset %d does not lead to a symbol", err.Code, err.Offset)
}

func (err *InvalidCodeError) Unwrap() error {
	return ErrCorruptInput
}
