package huffman

import (
	"reflect"
	"testing"
)

func TestSerializeParseDict_RoundTrip(t *testing.T) {
	table := Table{
		{Symbol: 'a', Code: "0"},
		{Symbol: 'b', Code: "10"},
		{Symbol: 'c', Code: "11"},
	}
	s := SerializeDictString(table)
	got, err := ParseDictString(s)
	if err != nil {
		t.Fatalf("ParseDictString(%q): %v", s, err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Errorf("round trip = %v, want %v", got, table)
	}
}

func TestSerializeParseDict_CommaKey(t *testing.T) {
	// When the alphabet contains a literal comma, its entry collides
	// with the "," delimiter, producing a ",," run that ParseDictString
	// must recognise as "the following entry's key is a comma".
	table := Table{
		{Symbol: 'a', Code: "0"},
		{Symbol: ',', Code: "10"},
		{Symbol: 'z', Code: "11"},
	}
	s := SerializeDictString(table)
	if s != ",a0,,10,z11" {
		t.Fatalf("serialized = %q, want ,a0,,10,z11", s)
	}
	got, err := ParseDictString(s)
	if err != nil {
		t.Fatalf("ParseDictString(%q): %v", s, err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Errorf("round trip with comma key = %v, want %v", got, table)
	}
}

func TestParseDictString_Empty(t *testing.T) {
	got, err := ParseDictString("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty table, got %v", got)
	}
}

func TestSerializeDict_BitRoundTrip(t *testing.T) {
	table := Table{
		{Symbol: 'A', Code: "01"},
		{Symbol: 'B', Code: "10"},
	}
	d := SerializeDict(table)
	got, err := ParseDict(d)
	if err != nil {
		t.Fatalf("ParseDict: %v", err)
	}
	if !reflect.DeepEqual(got, table) {
		t.Errorf("bit round trip = %v, want %v", got, table)
	}
}
