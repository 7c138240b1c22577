package hamming

import (
	"fmt"

	"github.com/dnacodex/dnacodex/internal/bits"
	"github.com/dnacodex/dnacodex/internal/dna"
)

// Correction describes one Hamming codeword whose single-bit error was
// detected and corrected during Decode, suitable for the
// "DNAcodeX_corrected_seqs" report.
type Correction struct {
	DNA       string // the raw (possibly mutated) DNA codeword
	Corrected string // the corrected codeword, as a bit string
	Raw       string // the uncorrected codeword, as a bit string
	Start     int    // start index (inclusive) within the DNA sequence
	End       int    // end index (exclusive) within the DNA sequence
}

// Decode walks seq seven DNA bases at a time — the width of a full
// Hamming codeword — correcting any single-bit error in each codeword.
// The final group may be shorter (6, 5, or 3 bases) if the encoded
// stream ended in a shortened codeword. It returns the concatenated,
// corrected bit stream (parity bits still included; see StripParity),
// the list of codewords that needed correction, and an error if seq
// contains a character outside {A,C,G,T}.
func Decode(seq string) (bits.Bits, []Correction, error) {
	out := make(bits.Bits, 0, len(seq))
	var corrections []Correction

	for i := 0; i < len(seq); i += 7 {
		end := i + 7
		if end > len(seq) {
			end = len(seq)
		}
		codewordDNA := seq[i:end]

		raw, err := dna.Decode(codewordDNA)
		if err != nil {
			return nil, nil, fmt.Errorf("hamming: decode codeword at %d:%d: %w", i, end, err)
		}

		corrected, changed := correctCodeword(raw)
		out = append(out, corrected...)

		if changed {
			corrections = append(corrections, Correction{
				DNA:       codewordDNA,
				Corrected: corrected.String(),
				Raw:       raw.String(),
				Start:     i,
				End:       end,
			})
		}
	}

	return out, corrections, nil
}
