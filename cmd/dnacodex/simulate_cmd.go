package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dnacodex/dnacodex"
	"github.com/dnacodex/dnacodex/internal/report"
	"github.com/dnacodex/dnacodex/internal/simulate"
)

func newSimulateCmd() *cobra.Command {
	flags := &sharedFlags{}
	var mutationRate float64
	var numRuns int
	var outputBase string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Introduce random single-base substitutions into an encoded sequence and measure retrieval fidelity",
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
			sequence := string(raw)
			opts := dnacodex.DecodeOptions{Type: t, Huffman: flags.huffman}

			baseline, err := dnacodex.Decode(sequence, opts)
			if err != nil {
				return errors.Wrap(err, "baseline decode")
			}

			reportWriter := report.NewSimulationReportWriter("Mutations_simulator_report.csv")
			for run := 1; run <= numRuns; run++ {
				mutated, mutationCount := simulate.Substitute(sequence, mutationRate)
				perfect, errorsCount, err := simulate.Run(mutated, opts, baseline.Data)
				if err != nil {
					log.WithError(err).WithField("run", run).Warn("simulation run failed to decode")
					continue
				}

				if err := reportWriter.Write(report.SimulationRun{
					InputFile:        flags.fileName,
					RunIndex:         run,
					MutationRate:     mutationRate,
					MutationCount:    mutationCount,
					ErrorsCount:      errorsCount,
					PerfectRetrieval: perfect,
				}); err != nil {
					log.WithError(err).Warn("failed to write simulation report row")
				}

				log.WithFields(logFields(flags, t)).
					WithField("run", run).
					WithField("perfect_retrieval", perfect).
					Info("simulation run complete")
			}

			outputPath := outputBase + "." + string(t)
			if err := os.WriteFile(outputPath, baseline.Data, 0644); err != nil {
				return errors.Wrapf(
					&dnacodex.Error{Kind: dnacodex.KindIO, Op: "WriteFile"},
					"writing %s", outputPath,
				)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64VarP(&mutationRate, "mutations_rate", "m", 0, "substitution rate in [0,1]")
	cmd.Flags().IntVarP(&numRuns, "n_sims", "n", 1, "number of simulation runs")
	cmd.Flags().StringVarP(&outputBase, "output_filename", "o", "data_decoded", "output file base name")
	_ = cmd.MarkFlagRequired("mutations_rate")
	_ = cmd.MarkFlagRequired("n_sims")
	return cmd
}
