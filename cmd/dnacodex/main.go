// Command dnacodex is the CLI front-end for the DNA encoding pipeline,
// bundling the encoder, decoder, and mutation simulator that the
// reference tool ships as three separate scripts into one binary.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dnacodex",
		Short: "Encode, decode, and fuzz-test DNA-base representations of arbitrary files",
	}

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newSimulateCmd())
	return root
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: false})

	// pflag cannot register the multi-letter single-dash "-huffman"
	// spelling, so it is rewritten to the equivalent long flag here.
	args := os.Args[1:]
	for i, a := range args {
		if a == "-huffman" {
			args[i] = "--huffman"
		}
	}
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		log.WithError(err).Error("dnacodex failed")
		os.Exit(1)
	}
}
