// Package simulate introduces random single-base substitutions into an
// already-encoded DNA sequence and measures how well the decode path
// tolerates them, as a property-testing harness rather than a core
// pipeline stage.
package simulate

import (
	"fmt"
	"math/rand"

	"github.com/dnacodex/dnacodex"
)

var bases = [4]byte{'A', 'C', 'G', 'T'}

// Substitute mutates sequence at exactly int(len(sequence)*rate)
// distinct positions, chosen without replacement, replacing each with
// one of the three other DNA bases selected uniformly at random. It
// returns the mutated sequence and the number of positions changed.
func Substitute(sequence string, rate float64) (string, int) {
	n := len(sequence)
	count := int(float64(n) * rate)
	if count <= 0 {
		return sequence, 0
	}

	positions := rand.Perm(n)[:count]
	mutated := []byte(sequence)
	for _, pos := range positions {
		mutated[pos] = differentBase(mutated[pos])
	}
	return string(mutated), count
}

// differentBase returns one of the three DNA bases other than cur,
// selected uniformly at random.
func differentBase(cur byte) byte {
	for {
		candidate := bases[rand.Intn(len(bases))]
		if candidate != cur {
			return candidate
		}
	}
}

// Run decodes seq with opts and reports whether the result matches
// want byte-for-byte (a "perfect retrieval"), along with the number of
// Hamming corrections the decode performed.
func Run(seq string, opts dnacodex.DecodeOptions, want []byte) (perfect bool, errorsCount int, err error) {
	result, err := dnacodex.Decode(seq, opts)
	if err != nil {
		return false, 0, fmt.Errorf("simulate: decode failed: %w", err)
	}
	return bytesEqual(result.Data, want), result.ErrorsCount, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
