package dna

import (
	"testing"

	"github.com/dnacodex/dnacodex/internal/bits"
)

func TestEncode_KnownSequence(t *testing.T) {
	// 01000110001111: even positions map straight through (0->C, 1->G),
	// odd positions get the C->T, G->A disguise.
	b := bits.Bits{0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1}
	want := "CACTCAGTCTGAGA"
	if got := Encode(b); got != want {
		t.Errorf("Encode = %s, want %s", got, want)
	}
}

func TestDecode_Inverts_Encode(t *testing.T) {
	tests := []bits.Bits{
		{},
		{0},
		{1},
		{0, 1, 0, 0, 0, 1, 1, 0, 0, 0, 1, 1, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	for _, b := range tests {
		seq := Encode(b)
		got, err := Decode(seq)
		if err != nil {
			t.Fatalf("Decode(%s) error: %v", seq, err)
		}
		if got.String() != b.String() {
			t.Errorf("Decode(Encode(%s)) = %s, want %s", b, got, b)
		}
	}
}

func TestDecode_RejectsInvalidBase(t *testing.T) {
	if _, err := Decode("CGXA"); err == nil {
		t.Error("expected error for non-DNA character")
	}
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"GCGC", 100},
		{"ATAT", 0},
		{"GCAT", 50},
	}
	for _, tt := range tests {
		if got := GCContent(tt.seq); got != tt.want {
			t.Errorf("GCContent(%q) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}
