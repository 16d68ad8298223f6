package main

import (
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	huffman "github.com/chronos-tachyon/hufftree"
	"github.com/spf13/cobra"
)

func (cmd *mainCmd) newRootCommand() *cobra.Command {
	var cfg config

	root := &cobra.Command{
		Use:           _name,
		Short:         "Encode and decode text with Huffman trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOutput(cmd.Stderr)
	cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		cmd.newEncodeCommand(&cfg),
		cmd.newDecodeCommand(&cfg),
		cmd.newRoundTripCommand(&cfg),
	)
	return root
}

func (cmd *mainCmd) newEncodeCommand(cfg *config) *cobra.Command {
	var showCodes bool
	c := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Print the bitstring for TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cfg.withOptions(cmd, func(opts []huffman.Option) error {
				bits, tree, err := huffman.EncodeString(args[0], opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Stdout, bits)
				if showCodes {
					printCodes(cmd.Stdout, tree)
				}
				return nil
			})
		},
	}
	c.Flags().BoolVar(&showCodes, "codes", false, "also print the code of each symbol")
	return c
}

func (cmd *mainCmd) newDecodeCommand(cfg *config) *cobra.Command {
	var text string
	c := &cobra.Command{
		Use:   "decode BITS",
		Short: "Decode BITS with the tree built from --text",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if text == "" {
				return fmt.Errorf("--text is required")
			}
			return cfg.withOptions(cmd, func(opts []huffman.Option) error {
				_, tree, err := huffman.EncodeString(text, opts...)
				if err != nil {
					return err
				}
				decoded, err := huffman.DecodeString(args[0], tree, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.Stdout, decoded)
				return nil
			})
		},
	}
	c.Flags().StringVar(&text, "text", "", "text whose symbol frequencies define the tree")
	return c
}

func (cmd *mainCmd) newRoundTripCommand(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip TEXT...",
		Short: "Encode and decode each TEXT, reporting sizes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cfg.withOptions(cmd, func(opts []huffman.Option) error {
				for _, text := range args {
					if err := roundTrip(cmd.Stdout, text, opts); err != nil {
						return fmt.Errorf("%q: %w", text, err)
					}
				}
				return nil
			})
		},
	}
}

func roundTrip(w io.Writer, text string, opts []huffman.Option) error {
	bits, tree, err := huffman.EncodeString(text, opts...)
	if err != nil {
		return err
	}
	decoded, err := huffman.DecodeString(bits, tree, opts...)
	if err != nil {
		return err
	}
	if decoded != text {
		return fmt.Errorf("decoded to %q", decoded)
	}
	fmt.Fprintf(w, "%q: %d symbols, %d bits -> %d bits\n",
		text, utf8.RuneCountInString(text), 8*len(text), len(bits))
	return nil
}

func printCodes(w io.Writer, tree *huffman.Tree) {
	codes := tree.Codes()
	symbols := make([]huffman.Symbol, 0, len(codes))
	for symbol := range codes {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i] < symbols[j]
	})
	for _, symbol := range symbols {
		fmt.Fprintf(w, "%v\t%v\n", symbol, codes[symbol])
	}
}
