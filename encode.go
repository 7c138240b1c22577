package dnacodex

import (
	"fmt"
	"strings"

	"github.com/dnacodex/dnacodex/internal/bits"
	"github.com/dnacodex/dnacodex/internal/dna"
	"github.com/dnacodex/dnacodex/internal/hamming"
	"github.com/dnacodex/dnacodex/internal/header"
	"github.com/dnacodex/dnacodex/internal/huffman"
)

// Encode runs data through the full pipeline — optional Huffman
// compression, Hamming(7,4)-family protection, and DNA-base mapping —
// and returns the resulting sequence and bookkeeping. opts.Type
// selects text or binary handling; opts.Huffman enables the
// compression stage.
func Encode(data []byte, opts EncodeOptions) (EncodeResult, error) {
	if !opts.Type.Valid() {
		return EncodeResult{}, &Error{Kind: KindUnsupportedType, Op: "Encode"}
	}

	var b bits.Bits
	if opts.Huffman {
		symbols := symbolsFor(data, opts.Type)
		table := huffman.Build(symbols)
		payload := huffman.Encode(symbols, table)
		dict := huffman.SerializeDict(table)

		framed, err := header.Encode(dict)
		if err != nil {
			return EncodeResult{}, &Error{Kind: KindMalformedHeader, Op: "Encode", Err: err}
		}
		b = append(framed, payload...)
	} else if opts.Type.IsText() {
		b = bits.UTF8Bits(string(data))
	} else {
		b = bits.ByteBits(data)
	}

	hammingBits, parityBits := hamming.Encode(b)
	seq := dna.Encode(hammingBits)

	return EncodeResult{
		Sequence:   seq,
		GCContent:  dna.GCContent(seq),
		RawBitLen:  len(b),
		ParityBits: parityBits,
	}, nil
}

// symbolsFor renders data as the symbol stream the Huffman stage
// consumes: UTF-8 characters for text, or a zero-padded 3-digit decimal
// symbol per byte for binary payloads.
func symbolsFor(data []byte, t PayloadType) []rune {
	if t.IsText() {
		return []rune(string(data))
	}
	var sb strings.Builder
	sb.Grow(len(data) * 3)
	for _, b := range data {
		fmt.Fprintf(&sb, "%03d", b)
	}
	return []rune(sb.String())
}
