package hamming

import "github.com/dnacodex/dnacodex/internal/bits"

// syndromeTable maps a 3-bit parity-mismatch pattern (e1<<2 | e2<<1 | e3,
// where e_i is 1 when the i-th recomputed parity disagrees with the
// received one) to the index of the bit it identifies as flipped. An
// entry of -1 means the pattern is either "no error" (all parities
// agree) or ambiguous for this shortened code — more than one bit would
// have to be wrong to produce it, so no correction is applied.
type syndromeTable [8]int

// codeword7 covers a full Hamming(7,4) block: data d0..d3, parity
// p1=d0^d1^d3, p2=d0^d2^d3, p3=d1^d2^d3. All 7 single-bit-flip patterns
// are distinct, giving the code full single-error-correction power.
var codeword7 = syndromeTable{0: -1, 6: 0, 5: 1, 3: 2, 7: 3, 4: 4, 2: 5, 1: 6}

// codeword6 covers the shortened 3-data-bit block: d0..d2,
// p1=d0^d1, p2=d1^d2, p3=d0^d2. Every single-bit flip still produces a
// distinct pattern; only the all-mismatch pattern (7) is unreachable by
// any single flip and is treated as uncorrectable.
var codeword6 = syndromeTable{0: -1, 7: -1, 5: 0, 6: 1, 3: 2, 4: 3, 2: 4, 1: 5}

// codeword5 covers the shortened 2-data-bit block: d0, d1,
// p1=not(d0), p2=not(d1), p3=d0^d1. Only 5 of the 7 nonzero patterns are
// reachable by a single flip; patterns 6 and 7 are ambiguous.
var codeword5 = syndromeTable{0: -1, 6: -1, 7: -1, 5: 0, 3: 1, 4: 2, 2: 3, 1: 4}

// correctCodeword applies single-bit error correction to one Hamming
// codeword (length 7, 6, 5, or 3) and reports whether a correction was
// made. The input is not mutated; a corrected copy is returned.
func correctCodeword(cw bits.Bits) (bits.Bits, bool) {
	out := append(bits.Bits(nil), cw...)

	switch len(cw) {
	case 7:
		return applySyndrome(out, codeword7, [3][3]int{{0, 1, 3}, {0, 2, 3}, {1, 2, 3}}, 4)
	case 6:
		return applySyndrome(out, codeword6, [3][3]int{{0, 1, -1}, {1, 2, -1}, {0, 2, -1}}, 3)
	case 5:
		return applyComplementSyndrome(out, codeword5)
	case 3:
		return applyMajorityVote(out)
	default:
		return out, false
	}
}

// applySyndrome recomputes each of the three parity checks described by
// checks (triples of data-bit indices XORed together; a -1 slot is
// ignored) against the received parity bits starting at parityOffset,
// looks up the resulting pattern in table, and flips the identified bit.
func applySyndrome(cw bits.Bits, table syndromeTable, checks [3][3]int, parityOffset int) (bits.Bits, bool) {
	v := 0
	for i, check := range checks {
		computed := byte(0)
		for _, idx := range check {
			if idx >= 0 {
				computed ^= cw[idx]
			}
		}
		if computed != cw[parityOffset+i] {
			v |= 1 << uint(2-i)
		}
	}
	pos := table[v]
	if pos < 0 {
		return cw, false
	}
	cw[pos] = flip(cw[pos])
	return cw, true
}

// applyComplementSyndrome handles the 5-bit block, whose first two
// parity bits are the complement of their data bit rather than an XOR
// of several bits.
func applyComplementSyndrome(cw bits.Bits, table syndromeTable) (bits.Bits, bool) {
	v := 0
	if flip(cw[0]) != cw[2] {
		v |= 1 << 2
	}
	if flip(cw[1]) != cw[3] {
		v |= 1 << 1
	}
	if (cw[0] ^ cw[1]) != cw[4] {
		v |= 1
	}
	pos := table[v]
	if pos < 0 {
		return cw, false
	}
	cw[pos] = flip(cw[pos])
	return cw, true
}

// applyMajorityVote corrects the 3-bit triplicated block by replacing
// the representative bit with whichever value appears at least twice.
func applyMajorityVote(cw bits.Bits) (bits.Bits, bool) {
	ones := int(cw[0]) + int(cw[1]) + int(cw[2])
	majority := byte(0)
	if ones >= 2 {
		majority = 1
	}
	if cw[0] == majority {
		return cw, false
	}
	cw[0] = majority
	return cw, true
}
