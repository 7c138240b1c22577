package bits

import "unicode/utf8"

// windowSize returns the number of bits spanned by the UTF-8 code point
// whose first byte starts with the given bits, and ok=false once none of
// the four leading-byte prefixes (0, 110, 1110, 11110) match.
func windowSize(b Bits) (int, bool) {
	starts := func(prefix string) bool {
		if len(b) < len(prefix) {
			return false
		}
		for i := 0; i < len(prefix); i++ {
			want := byte(0)
			if prefix[i] == '1' {
				want = 1
			}
			if b[i] != want {
				return false
			}
		}
		return true
	}
	switch {
	case starts("0"):
		return 8, true
	case starts("110"):
		return 16, true
	case starts("1110"):
		return 24, true
	case starts("11110"):
		return 32, true
	default:
		return 0, false
	}
}

// BitsToUTF8 decodes b as a sequence of UTF-8 code points using the
// leading-byte classifier to determine each window's width (8, 16, 24 or
// 32 bits). A window that does not decode as valid UTF-8 is skipped
// entirely rather than emitted as a replacement character, so the
// returned string may be shorter than the number of windows consumed;
// decoding stops as soon as the remaining bits match none of the four
// leading-byte prefixes.
func BitsToUTF8(b Bits) string {
	out := make([]byte, 0, len(b)/8)
	for len(b) > 0 {
		width, ok := windowSize(b)
		if !ok || width > len(b) {
			break
		}
		window := b[:width]
		b = b[width:]

		raw := BitsToBytes(window)
		if width == 8 && raw[0] == 0 {
			// An all-zero ASCII window carries no significant bits
			// (its big-endian integer value is 0, which renders as
			// zero bytes), so it contributes nothing to the output.
			continue
		}

		if utf8.Valid(raw) {
			out = append(out, raw...)
		}
	}
	return string(out)
}
