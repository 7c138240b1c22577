package dnacodex

import (
	"bytes"
	"testing"
)

func TestEncodeDecode_TextRoundTrip_NoHuffman(t *testing.T) {
	tests := []string{
		"A",
		"AB",
		"Hello, DNA world!",
		"",
	}
	for _, text := range tests {
		enc, err := Encode([]byte(text), EncodeOptions{Type: TypeTXT})
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		dec, err := Decode(enc.Sequence, DecodeOptions{Type: TypeTXT})
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc.Sequence, err)
		}
		if string(dec.Data) != text {
			t.Errorf("round trip %q = %q", text, string(dec.Data))
		}
		if dec.ErrorsCount != 0 {
			t.Errorf("unexpected corrections for clean round trip: %d", dec.ErrorsCount)
		}
	}
}

func TestEncodeDecode_TextRoundTrip_Huffman(t *testing.T) {
	tests := []string{
		"AB",
		"the quick brown fox jumps over the lazy dog",
		"aaaaaaaaaaaa",
	}
	for _, text := range tests {
		enc, err := Encode([]byte(text), EncodeOptions{Type: TypeTXT, Huffman: true})
		if err != nil {
			t.Fatalf("Encode(%q): %v", text, err)
		}
		dec, err := Decode(enc.Sequence, DecodeOptions{Type: TypeTXT, Huffman: true})
		if err != nil {
			t.Fatalf("Decode(%q): %v", enc.Sequence, err)
		}
		if string(dec.Data) != text {
			t.Errorf("huffman round trip %q = %q", text, string(dec.Data))
		}
	}
}

func TestEncodeDecode_BinaryRoundTrip(t *testing.T) {
	data := []byte{0, 255, 1, 128, 254, 42}
	enc, err := Encode(data, EncodeOptions{Type: TypePNG})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := Decode(enc.Sequence, DecodeOptions{Type: TypePNG})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec.Data, data) {
		t.Errorf("binary round trip = %v, want %v", dec.Data, data)
	}
}

func TestEncodeDecode_BinaryRoundTrip_Huffman(t *testing.T) {
	// Bytes 0 and 255 become the symbol stream "000255": one fully
	// zero-padded value and one that needs no padding.
	data := []byte{0, 255}
	enc, err := Encode(data, EncodeOptions{Type: TypePNG, Huffman: true})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := Decode(enc.Sequence, DecodeOptions{Type: TypePNG, Huffman: true})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec.Data, data) {
		t.Errorf("binary huffman round trip = %v, want %v", dec.Data, data)
	}
}

func TestDecode_SingleBitFlip_StillRecoversAndCounts(t *testing.T) {
	text := "AB"
	enc, err := Encode([]byte(text), EncodeOptions{Type: TypeTXT})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	mutated := mutateOneBase(enc.Sequence)
	dec, err := Decode(mutated, DecodeOptions{Type: TypeTXT})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(dec.Data) != text {
		t.Errorf("mutated round trip = %q, want %q", string(dec.Data), text)
	}
	if dec.ErrorsCount != 1 {
		t.Errorf("ErrorsCount = %d, want 1", dec.ErrorsCount)
	}
}

func mutateOneBase(seq string) string {
	bases := "ACGT"
	cur := seq[0]
	var next byte
	for i := 0; i < len(bases); i++ {
		if bases[i] != cur {
			next = bases[i]
			break
		}
	}
	return string(next) + seq[1:]
}

func TestEncode_RejectsUnsupportedType(t *testing.T) {
	_, err := Encode([]byte("x"), EncodeOptions{Type: "exe"})
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
	var e *Error
	if !asError(err, &e) || e.Kind != KindUnsupportedType {
		t.Errorf("expected KindUnsupportedType, got %v", err)
	}
}

func TestDecode_RejectsUnsupportedType(t *testing.T) {
	_, err := Decode("ACGT", DecodeOptions{Type: "exe"})
	if err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestEncode_EmptyInput(t *testing.T) {
	enc, err := Encode(nil, EncodeOptions{Type: TypeTXT})
	if err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	if enc.Sequence != "" {
		t.Errorf("expected empty sequence, got %q", enc.Sequence)
	}
	dec, err := Decode(enc.Sequence, DecodeOptions{Type: TypeTXT})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(dec.Data) != 0 {
		t.Errorf("expected empty decode, got %v", dec.Data)
	}
}

func TestEncode_EmptyInput_Huffman(t *testing.T) {
	enc, err := Encode(nil, EncodeOptions{Type: TypeTXT, Huffman: true})
	if err != nil {
		t.Fatalf("Encode(nil, huffman): %v", err)
	}
	dec, err := Decode(enc.Sequence, DecodeOptions{Type: TypeTXT, Huffman: true})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(dec.Data) != 0 {
		t.Errorf("expected empty decode, got %v", dec.Data)
	}
}
