// Package huffman builds a per-run Huffman code table over a symbol
// stream and uses it to compress the stream to a bit string, or expand
// a previously-produced bit string back to symbols. The table itself is
// not persisted by this package; see SerializeDict/ParseDict for the
// self-describing dictionary format that travels alongside the payload.
package huffman

import (
	"sort"

	"github.com/dnacodex/dnacodex/internal/bits"
)

// SymbolFreq pairs a symbol with the number of times it occurs in a
// symbol stream. FrequencyTable returns these in first-seen order.
type SymbolFreq struct {
	Symbol rune
	Freq   int
}

// FrequencyTable scans symbols and counts occurrences of each distinct
// rune, preserving the order in which each symbol was first seen. The
// ordering has no bearing on correctness (the dictionary is
// self-describing) but keeps tree construction deterministic across
// runs with identical input, matching the tie-breaking contract
// described in the package's design notes.
func FrequencyTable(symbols []rune) []SymbolFreq {
	index := make(map[rune]int)
	var freqs []SymbolFreq
	for _, s := range symbols {
		if i, ok := index[s]; ok {
			freqs[i].Freq++
			continue
		}
		index[s] = len(freqs)
		freqs = append(freqs, SymbolFreq{Symbol: s, Freq: 1})
	}
	return freqs
}

// node is one vertex of the Huffman tree. Leaves carry a symbol;
// internal nodes carry only the summed frequency of their subtree.
type node struct {
	symbol      rune
	isLeaf      bool
	freq        int
	left, right *node
}

// BuildTree repeatedly merges the two lowest-frequency nodes in the
// working list until one root remains. Each round performs a stable
// sort by frequency before popping the two lowest, so nodes with equal
// frequency keep their relative order from the previous round — leaves
// in first-seen order, newly-created internal nodes appended at the
// list's tail. freqs must be non-empty.
func BuildTree(freqs []SymbolFreq) *node {
	nodes := make([]*node, len(freqs))
	for i, f := range freqs {
		nodes[i] = &node{symbol: f.Symbol, isLeaf: true, freq: f.Freq}
	}

	for len(nodes) > 1 {
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].freq < nodes[j].freq })
		left, right := nodes[0], nodes[1]
		nodes = nodes[2:]
		nodes = append(nodes, &node{freq: left.freq + right.freq, left: left, right: right})
	}
	return nodes[0]
}

// Entry is one row of a Table: a symbol and the prefix-free bit string
// assigned to it. Table preserves the depth-first assignment order
// (left subtree before right subtree) rather than using a Go map,
// so dictionary serialisation is reproducible across runs against the
// same tree.
type Entry struct {
	Symbol rune
	Code   string
}

// Table is an ordered list of symbol-to-code assignments.
type Table []Entry

// CodeFor returns the code assigned to symbol, if any.
func (t Table) CodeFor(symbol rune) (string, bool) {
	for _, e := range t {
		if e.Symbol == symbol {
			return e.Code, true
		}
	}
	return "", false
}

// BuildCodes walks root depth-first, appending "0" for every left edge
// and "1" for every right edge, and records one Entry per leaf. A
// single-leaf tree (the whole stream is one repeated symbol) has no
// edges to walk, so that symbol is assigned the code "0" directly.
func BuildCodes(root *node) Table {
	if root.isLeaf {
		return Table{{Symbol: root.symbol, Code: "0"}}
	}
	var table Table
	var walk func(n *node, code string)
	walk = func(n *node, code string) {
		if n == nil {
			return
		}
		if n.isLeaf {
			table = append(table, Entry{Symbol: n.symbol, Code: code})
			return
		}
		walk(n.left, code+"0")
		walk(n.right, code+"1")
	}
	walk(root, "")
	return table
}

// Build scans symbols, constructs a Huffman tree over their frequency
// distribution, and returns the resulting code table. An empty symbol
// stream returns an empty table.
func Build(symbols []rune) Table {
	freqs := FrequencyTable(symbols)
	if len(freqs) == 0 {
		return nil
	}
	return BuildCodes(BuildTree(freqs))
}

// Encode replaces every symbol with its code from table and
// concatenates the result into a single bit stream.
func Encode(symbols []rune, table Table) bits.Bits {
	out := make(bits.Bits, 0, len(symbols))
	for _, s := range symbols {
		code, ok := table.CodeFor(s)
		if !ok {
			continue
		}
		for _, c := range code {
			if c == '1' {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// Decode scans payload one bit at a time, accumulating a candidate code
// and emitting the matching symbol as soon as one is found. Trailing
// bits that never complete a valid code are silently discarded — the
// "Huffman decode stall" condition is accepted rather than reported.
func Decode(payload bits.Bits, table Table) []rune {
	inverse := make(map[string]rune, len(table))
	for _, e := range table {
		inverse[e.Code] = e.Symbol
	}

	var out []rune
	current := make([]byte, 0, 8)
	for _, b := range payload {
		if b == 1 {
			current = append(current, '1')
		} else {
			current = append(current, '0')
		}
		if symbol, ok := inverse[string(current)]; ok {
			out = append(out, symbol)
			current = current[:0]
		}
	}
	return out
}
