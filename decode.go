package dnacodex

import (
	"strconv"

	"github.com/dnacodex/dnacodex/internal/bits"
	"github.com/dnacodex/dnacodex/internal/hamming"
	"github.com/dnacodex/dnacodex/internal/header"
	"github.com/dnacodex/dnacodex/internal/huffman"
)

// Decode is the strict inverse of Encode: it corrects single-bit errors
// in seq's Hamming codewords, strips parity, and — depending on opts —
// either runs the result back through the Huffman decoder or reads it
// directly as UTF-8 text or raw bytes. opts must match the options
// Encode was called with; the encoded file carries no mode marker.
func Decode(seq string, opts DecodeOptions) (DecodeResult, error) {
	if !opts.Type.Valid() {
		return DecodeResult{}, &Error{Kind: KindUnsupportedType, Op: "Decode"}
	}

	corrected, corrections, err := hamming.Decode(seq)
	if err != nil {
		return DecodeResult{}, &Error{Kind: KindMalformedHeader, Op: "Decode", Err: err}
	}
	stripped, parityRemoved := hamming.StripParity(corrected)

	var data []byte
	if opts.Huffman {
		r := bits.NewReader(stripped)
		dict, err := header.Decode(r)
		if err != nil {
			return DecodeResult{}, &Error{Kind: KindMalformedHeader, Op: "Decode", Err: err}
		}
		table, err := huffman.ParseDict(dict)
		if err != nil {
			return DecodeResult{}, &Error{Kind: KindMalformedHeader, Op: "Decode", Err: err}
		}
		symbols := huffman.Decode(r.Rest(), table)
		if opts.Type.IsText() {
			data = []byte(string(symbols))
		} else {
			data = regroupDigits(symbols)
		}
	} else if opts.Type.IsText() {
		data = []byte(bits.BitsToUTF8(stripped))
	} else {
		data = bits.BitsToBytes(stripped)
	}

	return DecodeResult{
		Data:              data,
		ErrorsCount:       len(corrections),
		Corrections:       corrections,
		RawSeqLen:         len(seq),
		ParityBitsRemoved: parityRemoved,
		StrippedBitLen:    len(stripped),
	}, nil
}

// regroupDigits reassembles a decoded binary-mode symbol stream into
// bytes: every run of 3 decimal-digit symbols is parsed as an integer
// in [0,255] and emitted as one byte. A group that isn't a valid
// 3-digit byte value is accepted as corruption and silently dropped,
// per the binary-Huffman reassembly failure policy.
func regroupDigits(symbols []rune) []byte {
	out := make([]byte, 0, len(symbols)/3)
	for i := 0; i+3 <= len(symbols); i += 3 {
		n, err := strconv.Atoi(string(symbols[i : i+3]))
		if err != nil || n < 0 || n > 255 {
			continue
		}
		out = append(out, byte(n))
	}
	return out
}
