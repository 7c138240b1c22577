// Package dnacodex composes the bit-stream, Huffman, Hamming, and DNA
// mapping stages into the end-to-end encode and decode pipeline, and
// dispatches between text and binary payload handling.
package dnacodex

import "github.com/dnacodex/dnacodex/internal/hamming"

// Correction re-exports hamming.Correction, the per-codeword
// error-correction record surfaced in DecodeResult for the
// "corrected sequences" report.
type Correction = hamming.Correction

// PayloadType names one of the six file-type selectors accepted by the
// CLI's -t/--type flag. It governs whether a payload is treated as
// UTF-8 text or as an opaque binary stream of zero-padded decimal-digit
// symbols.
type PayloadType string

const (
	TypeJPG   PayloadType = "jpg"
	TypeJPEG  PayloadType = "jpeg"
	TypePNG   PayloadType = "png"
	TypeTXT   PayloadType = "txt"
	TypeGZ    PayloadType = "gz"
	TypeTXTGZ PayloadType = "txt.gz"
)

// Valid reports whether t is one of the six accepted payload types.
func (t PayloadType) Valid() bool {
	switch t {
	case TypeJPG, TypeJPEG, TypePNG, TypeTXT, TypeGZ, TypeTXTGZ:
		return true
	default:
		return false
	}
}

// IsText reports whether t is handled as UTF-8 text rather than opaque
// binary. Only TypeTXT is text; every other type is binary, including
// txt.gz, which is a compressed byte stream rather than readable text.
func (t PayloadType) IsText() bool {
	return t == TypeTXT
}

// EncodeOptions selects the encode-time behavior of Encode.
type EncodeOptions struct {
	Type    PayloadType
	Huffman bool
}

// EncodeResult holds the artifact and bookkeeping produced by Encode.
type EncodeResult struct {
	Sequence   string  // the DNA base string written to the output file
	GCContent  float64 // percentage G/C content of Sequence
	RawBitLen  int     // length of B, the pre-Hamming bit stream
	ParityBits int     // number of parity bits added by the Hamming stage
}

// DecodeOptions selects the decode-time behavior of Decode. Type and
// Huffman must match the options the sequence was encoded with; the
// file format carries no self-describing mode marker (spec §6.1).
type DecodeOptions struct {
	Type    PayloadType
	Huffman bool
}

// DecodeResult holds the recovered payload and bookkeeping produced by
// Decode, sufficient to populate a DNAcodeX_decoding_INFO.csv row.
type DecodeResult struct {
	Data              []byte
	ErrorsCount       int
	Corrections       []Correction
	RawSeqLen         int // length of the input DNA sequence, in bases
	ParityBitsRemoved int
	StrippedBitLen    int // length of the bit stream after parity removal
}
