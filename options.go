package huffman

import (
	"fmt"
	"log/slog"

	"github.com/chronos-tachyon/hufftree/internal/log"
)

// MergeStrategy selects how BuildTree orders its working set of subtrees.
type MergeStrategy byte

const (
	// MergeDeque pushes each merged subtree onto the front of a
	// double-ended queue without re-sorting it into place.  The result is
	// a valid prefix-free code that is not necessarily minimal.
	MergeDeque MergeStrategy = iota

	// MergeHeap keeps the working set in a min-heap ordered by weight,
	// then by insertion order.  The result is an optimal Huffman code.
	MergeHeap
)

var mergeStrategyNames = [...]string{"deque", "heap"}

// String returns "deque" or "heap".
func (ms MergeStrategy) String() string {
	if int(ms) < len(mergeStrategyNames) {
		return mergeStrategyNames[ms]
	}
	return fmt.Sprintf("MergeStrategy(%d)", byte(ms))
}

// ParseMergeStrategy is the inverse of MergeStrategy.String.
func ParseMergeStrategy(str string) (MergeStrategy, error) {
	for index, name := range mergeStrategyNames {
		if name == str {
			return MergeStrategy(index), nil
		}
	}
	return 0, fmt.Errorf("huffman: unknown merge strategy %q", str)
}

// TruncationPolicy selects what Decode does when the bitstring ends part of
// the way through a code.
type TruncationPolicy byte

const (
	// TruncationError makes Decode fail with *TruncatedCodeError.
	TruncationError TruncationPolicy = iota

	// TruncationTolerate makes Decode drop the incomplete code and return
	// the symbols decoded so far.
	TruncationTolerate
)

// Option configures BuildTree, Encode, and Decode.
type Option func(*options)

type options struct {
	strategy   MergeStrategy
	truncation TruncationPolicy
	log        *log.Logger
}

func buildOptions(opts []Option) options {
	o := options{log: log.Discard}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMergeStrategy selects the MergeStrategy for BuildTree.  The default is
// MergeDeque.
func WithMergeStrategy(ms MergeStrategy) Option {
	return func(o *options) {
		o.strategy = ms
	}
}

// WithTruncationPolicy selects the TruncationPolicy for Decode.  The default
// is TruncationError.
func WithTruncationPolicy(tp TruncationPolicy) Option {
	return func(o *options) {
		o.truncation = tp
	}
}

// WithLogger sends debug-level progress messages to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.log = log.Wrap(l)
	}
}
