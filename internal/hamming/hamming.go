// Package hamming implements the Hamming(7,4)-family error-correcting
// code used to protect every 4-bit group of the pipeline's bit stream.
// Full groups of 4 data bits produce a 7-bit codeword; a single trailing
// group smaller than 4 produces a shortened 6-, 5-, or 3-bit codeword
// instead, so that no data bit is ever left unprotected.
package hamming

import "github.com/dnacodex/dnacodex/internal/bits"

// Encode partitions data into groups of 4 bits (the final group may be
// shorter) and appends parity bits to each, returning the concatenated
// codeword stream and the total number of parity bits added.
func Encode(data bits.Bits) (bits.Bits, int) {
	out := make(bits.Bits, 0, len(data)+len(data)/4*3+3)
	parityBits := 0
	for i := 0; i < len(data); i += 4 {
		end := i + 4
		if end > len(data) {
			end = len(data)
		}
		cw, p := encodeGroup(data[i:end])
		out = append(out, cw...)
		parityBits += p
	}
	return out, parityBits
}

func flip(bit byte) byte {
	if bit == 0 {
		return 1
	}
	return 0
}

// encodeGroup encodes one group of 1-4 data bits into its codeword,
// returning the codeword and the number of parity bits it carries.
func encodeGroup(d bits.Bits) (bits.Bits, int) {
	switch len(d) {
	case 4:
		p1 := d[0] ^ d[1] ^ d[3]
		p2 := d[0] ^ d[2] ^ d[3]
		p3 := d[1] ^ d[2] ^ d[3]
		return bits.Bits{d[0], d[1], d[2], d[3], p1, p2, p3}, 3
	case 3:
		p1 := d[0] ^ d[1]
		p2 := d[1] ^ d[2]
		p3 := d[0] ^ d[2]
		return bits.Bits{d[0], d[1], d[2], p1, p2, p3}, 3
	case 2:
		p1 := flip(d[0])
		p2 := flip(d[1])
		p3 := d[0] ^ d[1]
		return bits.Bits{d[0], d[1], p1, p2, p3}, 3
	case 1:
		return bits.Bits{d[0], d[0], d[0]}, 2
	default:
		panic("hamming: encodeGroup called with empty or oversized group")
	}
}

// dataBitsFor returns how many leading bits of a codeword of the given
// length are data bits (as opposed to parity bits).
func dataBitsFor(codewordLen int) int {
	switch codewordLen {
	case 7:
		return 4
	case 6:
		return 3
	case 5:
		return 2
	case 3:
		return 1
	default:
		return codewordLen
	}
}

// StripParity walks corrected (data, already error-corrected) in
// codeword-sized groups of 7 bits — the final group may be shorter,
// mirroring Encode's shortened trailing codeword — and returns the data
// bits with every parity bit discarded, along with the number of parity
// bits removed.
func StripParity(corrected bits.Bits) (bits.Bits, int) {
	out := make(bits.Bits, 0, len(corrected))
	parityCount := 0
	for i := 0; i < len(corrected); i += 7 {
		end := i + 7
		if end > len(corrected) {
			end = len(corrected)
		}
		cw := corrected[i:end]
		k := dataBitsFor(len(cw))
		out = append(out, cw[:k]...)
		parityCount += len(cw) - k
	}
	return out, parityCount
}
