// Package dna maps between bit strings and the four-letter DNA-base
// alphabet {A,C,G,T}, biasing the output toward balanced G/C content by
// disguising every odd-position base.
package dna

import (
	"fmt"

	"github.com/dnacodex/dnacodex/internal/bits"
)

// Encode maps b to a DNA sequence. Each bit first becomes C (0) or G (1);
// every base at an odd 0-based index is then substituted (C→T, G→A),
// which keeps the sequence free of long runs of a single base between
// adjacent positions without affecting round-trip decoding.
func Encode(b bits.Bits) string {
	out := make([]byte, len(b))
	for i, bit := range b {
		base := byte('C')
		if bit != 0 {
			base = 'G'
		}
		if i%2 == 1 {
			switch base {
			case 'C':
				base = 'T'
			case 'G':
				base = 'A'
			}
		}
		out[i] = base
	}
	return string(out)
}

// Decode maps a DNA sequence back to its bit string. It is
// position-independent: merging T→C and A→G undoes the odd-position
// disguise regardless of where in the sequence a base sits, since the
// disguise only ever substitutes C→T or G→A and never the reverse.
func Decode(seq string) (bits.Bits, error) {
	out := make(bits.Bits, len(seq))
	for i := 0; i < len(seq); i++ {
		base := seq[i]
		switch base {
		case 'T':
			base = 'C'
		case 'A':
			base = 'G'
		}
		switch base {
		case 'C':
			out[i] = 0
		case 'G':
			out[i] = 1
		default:
			return nil, fmt.Errorf("dna: invalid base %q at position %d", seq[i], i)
		}
	}
	return out, nil
}

// GCContent returns the percentage of bases in seq that are G or C,
// rounded to three decimal places. An empty sequence reports 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'G' || seq[i] == 'C' {
			gc++
		}
	}
	pct := float64(gc) / float64(len(seq)) * 100
	return round3(pct)
}

func round3(f float64) float64 {
	const scale = 1000
	return float64(int(f*scale+0.5)) / scale
}
