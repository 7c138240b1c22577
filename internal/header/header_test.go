package header

import (
	"strings"
	"testing"

	"github.com/dnacodex/dnacodex/internal/bits"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		",A0,B1",
		strings.Repeat("x", 137),
	}
	for _, d := range tests {
		dict := bits.UTF8Bits(d)
		encoded, err := Encode(dict)
		if err != nil {
			t.Fatalf("Encode(%d bits): %v", len(dict), err)
		}

		r := bits.NewReader(encoded)
		got, err := Decode(r)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got.String() != dict.String() {
			t.Errorf("round trip dict mismatch: got %s, want %s", got, dict)
		}
	}
}

func TestEncode_MDigitMatchesLength(t *testing.T) {
	dict := bits.UTF8Bits(strings.Repeat("a", 20)) // 160 bits, m should be 3
	encoded, err := Encode(dict)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	m, err := bits.ParseASCIIDigits(encoded[:8])
	if err != nil {
		t.Fatalf("ParseASCIIDigits(m): %v", err)
	}
	if m != 3 {
		t.Errorf("m = %d, want 3", m)
	}
}

func TestDecode_RejectsTruncatedStream(t *testing.T) {
	r := bits.NewReader(bits.ASCIIDigits(1)[:4]) // fewer than 8 bits
	if _, err := Decode(r); err == nil {
		t.Error("expected error decoding truncated m field")
	}
}

func TestDecode_RejectsMalformedM(t *testing.T) {
	// 'x' is not a decimal digit.
	r := bits.NewReader(bits.ByteBits([]byte("x")))
	if _, err := Decode(r); err == nil {
		t.Error("expected error decoding non-digit m")
	}
}

func TestDecode_RejectsOversizedL(t *testing.T) {
	// Claims L = 999 bits but provides none.
	header := append(bits.ASCIIDigits(3), bits.ASCIIDigits(999)...)
	r := bits.NewReader(header)
	if _, err := Decode(r); err == nil {
		t.Error("expected error when L exceeds remaining bits")
	}
}

func TestDecode_RejectsZeroM(t *testing.T) {
	r := bits.NewReader(bits.ASCIIDigits(0))
	if _, err := Decode(r); err == nil {
		t.Error("expected error for m=0 (out of [1,9] range)")
	}
}
