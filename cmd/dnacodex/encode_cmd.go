package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dnacodex/dnacodex"
)

func newEncodeCmd() *cobra.Command {
	flags := &sharedFlags{}
	var outputBase string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a file into a DNA-base sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.requireFileName(); err != nil {
				return err
			}
			t, err := flags.payloadType()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(flags.fileName)
			if err != nil {
				return errors.Wrapf(
					&dnacodex.Error{Kind: dnacodex.KindIO, Op: "ReadFile"},
					"reading %s", flags.fileName,
				)
			}

			result, err := dnacodex.Encode(data, dnacodex.EncodeOptions{Type: t, Huffman: flags.huffman})
			if err != nil {
				return errors.Wrap(err, "encode")
			}

			suffix := "_" + string(t) + ".txt"
			if t.IsText() {
				suffix = "_text.txt"
			}
			outputPath := outputBase + suffix
			if err := os.WriteFile(outputPath, []byte(result.Sequence), 0644); err != nil {
				return errors.Wrapf(
					&dnacodex.Error{Kind: dnacodex.KindIO, Op: "WriteFile"},
					"writing %s", outputPath,
				)
			}

			log.WithFields(logFields(flags, t)).
				WithField("gc_content", fmt.Sprintf("%.3f%%", result.GCContent)).
				WithField("output", outputPath).
				Info("encoded")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputBase, "output_filename", "o", "encoded_data.txt", "output file base name")
	return cmd
}

func logFields(flags *sharedFlags, t dnacodex.PayloadType) map[string]interface{} {
	return map[string]interface{}{
		"file":    flags.fileName,
		"type":    string(t),
		"huffman": flags.huffman,
	}
}
