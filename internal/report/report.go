// Package report renders the three CSV artifacts the CLI persists as a
// side effect of encode/decode/simulate runs. DecodingInfoWriter and
// SimulationReportWriter append rows to a file, writing a header row only
// when the file is first created, mirroring the reference tool's
// os.path.exists guard. CorrectedSeqWriter instead creates or truncates
// a per-run file and writes no header row.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/dnacodex/dnacodex/internal/hamming"
)

// DecodingInfo is one row of DNAcodeX_decoding_INFO.csv.
type DecodingInfo struct {
	InputFile           string
	RunID               string // formatted as YYYYMMDDHHMMSS
	ErrorsCount         int
	InputSequenceLength int
	RemovedParityBits   int
	StrippedBitLength   int
	OutputFileSize      int64
}

// DecodingInfoWriter appends DecodingInfo rows to path, writing the
// header row only the first time the file is created.
type DecodingInfoWriter struct {
	path string
}

// NewDecodingInfoWriter returns a writer targeting path.
func NewDecodingInfoWriter(path string) *DecodingInfoWriter {
	return &DecodingInfoWriter{path: path}
}

var decodingInfoHeader = []string{
	"Input File", "ID(DateTime)", "Errors Count", "Length of Input Sequence",
	"Removed Parity Bits", "Length of Sequence After Parity Bits Removal",
	"Output File Size (bytes)",
}

// Write appends one row, creating the file and its header if this is
// the first row ever written to path.
func (w *DecodingInfoWriter) Write(row DecodingInfo) error {
	return appendCSV(w.path, decodingInfoHeader, []string{
		row.InputFile,
		row.RunID,
		fmt.Sprint(row.ErrorsCount),
		fmt.Sprint(row.InputSequenceLength),
		fmt.Sprint(row.RemovedParityBits),
		fmt.Sprint(row.StrippedBitLength),
		fmt.Sprint(row.OutputFileSize),
	})
}

// CorrectedSeqWriter appends one row per Hamming codeword that needed
// correction during a decode run, to a per-run file named
// DNAcodeX_corrected_seqs_<runID>.csv. Unlike DecodingInfoWriter it
// carries no header row: the reference tool truncates this file at the
// start of every run (os.open(..., "w")) rather than appending across
// runs, since its name already disambiguates the run.
type CorrectedSeqWriter struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// NewCorrectedSeqWriter creates (or truncates) path and returns a
// writer over it. Close must be called when done.
func NewCorrectedSeqWriter(path string) (*CorrectedSeqWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &CorrectedSeqWriter{path: path, f: f, w: csv.NewWriter(f)}, nil
}

// WriteCorrection appends one row describing a corrected codeword.
func (w *CorrectedSeqWriter) WriteCorrection(c hamming.Correction) error {
	if err := w.w.Write([]string{
		c.DNA,
		c.Corrected,
		c.Raw,
		fmt.Sprintf("%d:%d", c.Start, c.End),
	}); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

// Close flushes and closes the underlying file.
func (w *CorrectedSeqWriter) Close() error {
	w.w.Flush()
	return w.f.Close()
}

// SimulationRun is one row of Mutations_simulator_report.csv.
type SimulationRun struct {
	InputFile        string
	RunIndex         int
	MutationRate     float64
	MutationCount    int
	ErrorsCount      int
	PerfectRetrieval bool
}

// SimulationReportWriter appends SimulationRun rows to path, writing
// the header row only the first time the file is created.
type SimulationReportWriter struct {
	path string
}

// NewSimulationReportWriter returns a writer targeting path.
func NewSimulationReportWriter(path string) *SimulationReportWriter {
	return &SimulationReportWriter{path: path}
}

var simulationReportHeader = []string{
	"Input File", "Run Index", "Mutation Rate", "Mutation Count",
	"Errors Count", "Perfect Retrieval",
}

// Write appends one row, creating the file and its header if this is
// the first row ever written to path.
func (w *SimulationReportWriter) Write(row SimulationRun) error {
	perfect := "0"
	if row.PerfectRetrieval {
		perfect = "1"
	}
	return appendCSV(w.path, simulationReportHeader, []string{
		row.InputFile,
		fmt.Sprint(row.RunIndex),
		fmt.Sprintf("%g", row.MutationRate),
		fmt.Sprint(row.MutationCount),
		fmt.Sprint(row.ErrorsCount),
		perfect,
	})
}

// appendCSV opens path in append mode (creating it if absent), writes
// header first if the file did not already exist, then writes row.
func appendCSV(path string, header, row []string) error {
	_, statErr := os.Stat(path)
	exists := statErr == nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
