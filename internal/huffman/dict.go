package huffman

import (
	"fmt"
	"strings"

	"github.com/dnacodex/dnacodex/internal/bits"
)

// SerializeDictString renders table as the self-describing dictionary
// format: the concatenation of "," + symbol + code for every entry, in
// the table's own order. A literal-comma symbol produces two adjacent
// commas ("the entry's delimiter" followed by "the comma key itself"),
// which ParseDictString recognises specially.
func SerializeDictString(table Table) string {
	var sb strings.Builder
	for _, e := range table {
		sb.WriteByte(',')
		sb.WriteRune(e.Symbol)
		sb.WriteString(e.Code)
	}
	return sb.String()
}

// SerializeDict is SerializeDictString followed by a UTF-8 bit
// rendering, ready to be embedded as the D region of the header.
func SerializeDict(table Table) bits.Bits {
	return bits.UTF8Bits(SerializeDictString(table))
}

// ParseDictString parses the dictionary format produced by
// SerializeDictString. Only one entry may have a literal comma as its
// symbol, which is sufficient in practice: a symbol alphabet never
// repeats a symbol, so at most one entry's key collides with the
// delimiter.
func ParseDictString(s string) (Table, error) {
	if s == "" {
		return nil, nil
	}

	var raw []string
	if idx := strings.Index(s, ",,"); idx != -1 {
		before := s[:idx]
		after := s[idx+2:]
		raw = append(raw, strings.Split(before, ",")...)
		afterParts := strings.Split(after, ",")
		afterParts[0] = "," + afterParts[0]
		raw = append(raw, afterParts...)
	} else {
		raw = strings.Split(s[1:], ",")
	}

	var table Table
	for _, entry := range raw {
		if entry == "" {
			continue
		}
		runes := []rune(entry)
		symbol := runes[0]
		code := string(runes[1:])
		if code == "" {
			return nil, fmt.Errorf("huffman: dictionary entry for %q has no code", symbol)
		}
		table = append(table, Entry{Symbol: symbol, Code: code})
	}
	return table, nil
}

// ParseDict decodes a UTF-8 bit rendering of the dictionary (the D
// region read from the header) and parses it with ParseDictString.
func ParseDict(d bits.Bits) (Table, error) {
	return ParseDictString(bits.BitsToUTF8(d))
}
