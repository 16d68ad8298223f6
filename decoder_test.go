package huffman

import (
	"testing"

	"github.com/chronos-tachyon/hufftree/internal/log/logtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SingleSymbol(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"A", "AAAAA"} {
		bits, tree, err := EncodeString(input)
		require.NoError(t, err)
		require.Empty(t, bits)

		got, err := DecodeString(bits, tree)
		require.NoError(t, err)
		assert.Equal(t, input, got)
	}

	// The repeat count comes from the Tree, while explicit left steps
	// through the synthetic root decode one Symbol each.
	tree := buildTestTree(t, "AAAAA")
	for bits, expect := range map[string]string{"": "AAAAA", "0": "A", "00": "AA"} {
		actual, err := DecodeString(bits, tree)
		if err != nil {
			t.Errorf("DecodeString(%q) failed: %v", bits, err)
		}
		if expect != actual {
			t.Errorf("DecodeString(%q):\n\texpect: %q\n\tactual: %q", bits, expect, actual)
		}
	}

	got, err := DecodeString("01", tree)
	assert.Equal(t, "A", got)
	var invalid *InvalidCodeError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 1, invalid.Offset)
	assert.Equal(t, Code("1"), invalid.Code)
	assert.ErrorIs(t, err, ErrCorruptInput)
}

func TestDecode_Truncated(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "HUFFMAN")

	got, err := DecodeString("0111", tree)
	assert.Equal(t, "H", got)

	var truncated *TruncatedCodeError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, 3, truncated.Offset)
	assert.Equal(t, Code("1"), truncated.Partial)
	assert.ErrorIs(t, err, ErrCorruptInput)
	assert.EqualError(t, err, `huffman: input ends mid-code at offset 3 after 1 bit(s) "1"`)

	got, err = DecodeString("0111", tree, WithTruncationPolicy(TruncationTolerate))
	require.NoError(t, err)
	assert.Equal(t, "H", got)
}

func TestDecode_InvalidBit(t *testing.T) {
	t.Parallel()

	tree := buildTestTree(t, "HUFFMAN")

	got, err := DecodeString("10x1", tree)
	assert.Equal(t, "F", got)

	var invalid *InvalidBitError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 2, invalid.Offset)
	assert.Equal(t, byte('x'), invalid.Char)
	assert.ErrorIs(t, err, ErrCorruptInput)
}

func TestDecode_NilTree(t *testing.T) {
	t.Parallel()

	symbols, err := Decode("0", nil)
	if err != ErrNilTree {
		t.Errorf("expected ErrNilTree, got %v", err)
	}
	if symbols != nil {
		t.Errorf("expected nil symbols, got %v", symbols)
	}

	if _, err := DecodeString("", &Tree{}); err != ErrNilTree {
		t.Errorf("expected ErrNilTree for a zero Tree, got %v", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	got, err := Decode("", buildTestTree(t, "HUFFMAN"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_Logging(t *testing.T) {
	t.Parallel()

	logger := logtest.NewLogger(t)
	bits, tree, err := EncodeString("AAAAABBAHHBCBGCCC", WithLogger(logger.Logger))
	require.NoError(t, err)

	got, err := DecodeString(bits+"1", tree,
		WithLogger(logger.Logger),
		WithTruncationPolicy(TruncationTolerate))
	require.NoError(t, err)
	assert.Equal(t, "AAAAABBAHHBCBGCCC", got)
}

// Decoding never mutates the Tree, so one Tree may serve many goroutines.
func TestDecode_Concurrent(t *testing.T) {
	t.Parallel()

	const input = "the quick brown fox jumps over the lazy dog"
	bits, tree, err := EncodeString(input)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			got, err := DecodeString(bits, tree)
			require.NoError(t, err)
			assert.Equal(t, input, got)
		})
	}
}
