// Package header encodes and decodes the two-level ASCII-digit length
// prefix that makes a serialised Huffman dictionary self-delimiting
// within the pipeline's bit stream.
package header

import (
	"fmt"

	"github.com/dnacodex/dnacodex/internal/bits"
)

// maxM is the largest permitted digit-count for L, supporting
// dictionaries up to 999,999,999 bits (~125 MB serialised).
const maxM = 9

// Encode renders dict's own length as a two-level ASCII-digit prefix and
// returns the prefix concatenated with dict: asciiDigits(m) ∥
// asciiDigits(L) ∥ dict, where L = len(dict) and m is L's decimal digit
// count. It fails if L needs more than 9 digits to express.
func Encode(dict bits.Bits) (bits.Bits, error) {
	l := len(dict)
	m := len(fmt.Sprintf("%d", l))
	if m > maxM {
		return nil, fmt.Errorf("header: dictionary length %d needs %d digits, max is %d", l, m, maxM)
	}

	out := make(bits.Bits, 0, 8+m*8+l)
	out = append(out, bits.ASCIIDigits(m)...)
	out = append(out, bits.ASCIIDigits(l)...)
	out = append(out, dict...)
	return out, nil
}

// Decode reads a header from the front of r and returns the dictionary
// bits it delimits. r is left positioned at the first bit of the
// Huffman-encoded payload. It fails if fewer bits remain than the
// header declares, or if either length field is not valid ASCII
// decimal, or if m falls outside [1, 9].
func Decode(r *bits.Reader) (bits.Bits, error) {
	mBits, ok := r.Take(8)
	if !ok {
		return nil, fmt.Errorf("header: stream too short to hold m")
	}
	m, err := bits.ParseASCIIDigits(mBits)
	if err != nil {
		return nil, fmt.Errorf("header: malformed m: %w", err)
	}
	if m < 1 || m > maxM {
		return nil, fmt.Errorf("header: m=%d out of range [1,%d]", m, maxM)
	}

	lBits, ok := r.Take(m * 8)
	if !ok {
		return nil, fmt.Errorf("header: stream too short to hold L (%d ASCII digits)", m)
	}
	l, err := bits.ParseASCIIDigits(lBits)
	if err != nil {
		return nil, fmt.Errorf("header: malformed L: %w", err)
	}
	if l < 0 {
		return nil, fmt.Errorf("header: negative L=%d", l)
	}

	dict, ok := r.Take(l)
	if !ok {
		return nil, fmt.Errorf("header: L=%d exceeds %d remaining bits", l, r.Remaining())
	}
	return dict, nil
}
