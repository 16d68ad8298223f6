package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTest(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	err = run(&mainCmd{Stdout: &out, Stderr: &errOut}, args)
	return out.String(), errOut.String(), err
}

func TestEncode(t *testing.T) {
	t.Parallel()

	stdout, _, err := runTest(t, "encode", "HUFFMAN")
	require.NoError(t, err)
	assert.Equal(t, "011111010001010000\n", stdout)

	stdout, _, err = runTest(t, "encode", "--strategy=heap", "HUFFMAN")
	require.NoError(t, err)
	assert.Equal(t, "101000101110100111\n", stdout)
}

func TestEncode_Codes(t *testing.T) {
	t.Parallel()

	stdout, _, err := runTest(t, "encode", "--codes", "AAB")
	require.NoError(t, err)
	assert.Equal(t, "110\n'A'\t\"1\"\n'B'\t\"0\"\n", stdout)
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	_, _, err := runTest(t, "encode", "")
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	stdout, _, err := runTest(t, "decode", "--text", "HUFFMAN", "011111010001010000")
	require.NoError(t, err)
	assert.Equal(t, "HUFFMAN\n", stdout)

	_, _, err = runTest(t, "decode", "--text", "HUFFMAN", "0111")
	var truncated *huffman.TruncatedCodeError
	assert.ErrorAs(t, err, &truncated)

	stdout, _, err = runTest(t, "decode", "--tolerate-truncation", "--text", "HUFFMAN", "0111")
	require.NoError(t, err)
	assert.Equal(t, "H\n", stdout)

	_, _, err = runTest(t, "decode", "0111")
	assert.EqualError(t, err, "--text is required")
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	stdout, _, err := runTest(t, "roundtrip", "HUFFMAN", "AAAAABBAHHBCBGCCC", "A", "AAAAA")
	require.NoError(t, err)
	assert.Equal(t,
		`"HUFFMAN": 7 symbols, 56 bits -> 18 bits`+"\n"+
			`"AAAAABBAHHBCBGCCC": 17 symbols, 136 bits -> 37 bits`+"\n"+
			`"A": 1 symbols, 8 bits -> 0 bits`+"\n"+
			`"AAAAA": 5 symbols, 40 bits -> 0 bits`+"\n",
		stdout)

	_, _, err = runTest(t, "roundtrip", "")
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
}

func TestInvalidUTF8(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"encode", "A\xffB"},
		{"roundtrip", "HUFFMAN", "A\xffB"},
		{"decode", "--text", "A\xffB", "00101"},
	}
	for _, args := range tests {
		stdout, _, err := runTest(t, args...)
		assert.ErrorIs(t, err, huffman.ErrInvalidUTF8, "args %q", args)
		if args[0] == "roundtrip" {
			assert.Equal(t, `"HUFFMAN": 7 symbols, 56 bits -> 18 bits`+"\n", stdout)
		} else {
			assert.Empty(t, stdout, "args %q", args)
		}
	}
}

func TestBadStrategy(t *testing.T) {
	t.Parallel()

	_, _, err := runTest(t, "encode", "--strategy=quantum", "HUFFMAN")
	assert.ErrorContains(t, err, `unknown merge strategy "quantum"`)
}

func TestVerboseLogFile(t *testing.T) {
	t.Parallel()

	logFile := filepath.Join(t.TempDir(), "hufftree.log")
	_, stderr, err := runTest(t, "encode", "-v", "--log", logFile, "HUFFMAN")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	body, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(body), "DEBUG built huffman tree hufftree.symbols=6 hufftree.strategy=deque")
	assert.Contains(t, string(body), "DEBUG encoded sequence hufftree.symbols=7 hufftree.distinct=6 hufftree.bits=18")
}
