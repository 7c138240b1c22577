package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dnacodex/dnacodex"
	"github.com/dnacodex/dnacodex/internal/report"
)

func newDecodeCmd() *cobra.Command {
	flags := &sharedFlags{}
	var outputBase string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a DNA-base sequence back into its original file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.requireFileName(); err != nil {
				return err
			}
			t, err := flags.payloadType()
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(flags.fileName)
			if err != nil {
				return errors.Wrapf(
					&dnacodex.Error{Kind: dnacodex.KindIO, Op: "ReadFile"},
					"reading %s", flags.fileName,
				)
			}

			runID := runTimestamp()
			result, err := dnacodex.Decode(string(raw), dnacodex.DecodeOptions{Type: t, Huffman: flags.huffman})
			if err != nil {
				return errors.Wrap(err, "decode")
			}

			outputPath := outputBase + "." + string(t)
			if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
				return errors.Wrapf(
					&dnacodex.Error{Kind: dnacodex.KindIO, Op: "WriteFile"},
					"writing %s", outputPath,
				)
			}

			if err := writeCorrectionReport(runID, result.Corrections); err != nil {
				log.WithError(err).Warn("failed to write corrected-sequences report")
			}

			info, err := os.Stat(outputPath)
			if err != nil {
				return errors.Wrap(err, "stat output file")
			}
			infoWriter := report.NewDecodingInfoWriter("DNAcodeX_decoding_INFO.csv")
			if err := infoWriter.Write(report.DecodingInfo{
				InputFile:           flags.fileName,
				RunID:               runID,
				ErrorsCount:         result.ErrorsCount,
				InputSequenceLength: result.RawSeqLen,
				RemovedParityBits:   result.ParityBitsRemoved,
				StrippedBitLength:   result.StrippedBitLen,
				OutputFileSize:      info.Size(),
			}); err != nil {
				log.WithError(err).Warn("failed to write decoding-info report")
			}

			log.WithFields(logFields(flags, t)).
				WithField("errors_corrected", result.ErrorsCount).
				WithField("output", outputPath).
				Info("decoded")
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputBase, "output_filename", "o", "decoded_data", "output file base name")
	return cmd
}

func runTimestamp() string {
	return time.Now().Format("20060102150405")
}

func writeCorrectionReport(runID string, corrections []dnacodex.Correction) error {
	if len(corrections) == 0 {
		return nil
	}
	w, err := report.NewCorrectedSeqWriter("DNAcodeX_corrected_seqs_" + runID + ".csv")
	if err != nil {
		return err
	}
	defer w.Close()
	for _, c := range corrections {
		if err := w.WriteCorrection(c); err != nil {
			return err
		}
	}
	return nil
}
