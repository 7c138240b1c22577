package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dnacodex/dnacodex"
)

// sharedFlags are the -f/-t/-huffman trio common to all three
// subcommands.
type sharedFlags struct {
	fileName string
	typeStr  string
	huffman  bool
}

func (f *sharedFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.fileName, "file_name", "f", "", "input file path")
	flags.StringVarP(&f.typeStr, "type", "t", "", "payload type: jpg|jpeg|png|txt|gz|txt.gz")
	// pflag shorthands are limited to one rune, so "huffman" and
	// "Huffman" are registered as two long flags bound to the same
	// variable rather than as a true shorthand; main rewrites the
	// single-dash "-huffman" spelling to "--huffman" before parsing.
	flags.BoolVar(&f.huffman, "huffman", false, "enable Huffman compression stage")
	flags.BoolVar(&f.huffman, "Huffman", false, "alias of --huffman")

	_ = cmd.MarkFlagRequired("file_name")
	_ = cmd.MarkFlagRequired("type")
}

// payloadType validates typeStr against the six accepted selectors and
// returns the corresponding dnacodex.PayloadType.
func (f *sharedFlags) payloadType() (dnacodex.PayloadType, error) {
	t := dnacodex.PayloadType(f.typeStr)
	if !t.Valid() {
		return "", errors.Wrapf(
			&dnacodex.Error{Kind: dnacodex.KindUnsupportedType, Op: "CLI"},
			"type %q must be one of jpg|jpeg|png|txt|gz|txt.gz", f.typeStr,
		)
	}
	return t, nil
}

func (f *sharedFlags) requireFileName() error {
	if f.fileName == "" {
		return fmt.Errorf("-f/--file_name is required")
	}
	return nil
}
