// Package huffman builds path-coded Huffman trees and uses them to encode
// symbol sequences as strings of '0' and '1' characters.
//
// A Tree is built once from the frequencies of the symbols in a sequence.
// Each symbol's code is the path from the root to its leaf, where '0' means
// "go left" and '1' means "go right".  Because every symbol sits on a leaf,
// no code is a prefix of another, and an encoded sequence can be decoded
// left to right without delimiters.
//
// Two merge strategies are available.  MergeDeque, the default, reinserts
// each merged subtree at the front of a double-ended working set; it always
// produces a valid prefix-free code, but not always a minimal one.
// MergeHeap keeps the working set in a min-heap and produces an optimal
// code.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
