package identifier

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rodoufu/serde/internal/common"
)

// FormatInvalidIndex renders the message for an index outside [0, n).
func FormatInvalidIndex(kind Kind, value uint64, n int) string {
	return fmt.Sprintf("invalid value: integer `%d`, expected %s index 0 <= i < %d", value, kind, n)
}

// FormatUnknownName renders the message for a name matching none of allowed.
func FormatUnknownName(kind Kind, value string, allowed []string) string {
	if common.IsEmpty(allowed) {
		return fmt.Sprintf("unknown %s `%s`, there are no %ss", kind, value, kind)
	}

	return fmt.Sprintf("unknown %s `%s`, expected %s", kind, value, OneOf(allowed))
}

// OneOf joins backtick-quoted names the way expectation messages list
// alternatives: "`a`", "`a` or `b`", "one of `a`, `b`, `c`".
func OneOf(names []string) string {
	switch {
	case common.IsEmpty(names):
		return ""
	case common.IsSingle(names):
		return "`" + names[0] + "`"
	case len(names) == 2:
		return "`" + names[0] + "` or `" + names[1] + "`"
	}

	var b strings.Builder

	b.WriteString("one of ")

	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString("`" + name + "`")
	}

	return b.String()
}

// lossy replaces every maximal ill-formed subsequence of b with one U+FFFD,
// so a truncated multi-byte sequence yields a single replacement.
func lossy(b []byte) string {
	var sb strings.Builder

	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r != utf8.RuneError || size > 1 {
			sb.Write(b[:size])
			b = b[size:]

			continue
		}

		sb.WriteRune(utf8.RuneError)
		b = b[maximalSubpart(b):]
	}

	return sb.String()
}

// maximalSubpart returns the length of the longest prefix of b that starts
// a well-formed UTF-8 sequence, at least 1.
func maximalSubpart(b []byte) int {
	lo, hi := byte(0x80), byte(0xBF)

	var need int

	switch lead := b[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 1
	case lead == 0xE0:
		need, lo = 2, 0xA0
	case lead == 0xED:
		need, hi = 2, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 2
	case lead == 0xF0:
		need, lo = 3, 0x90
	case lead == 0xF4:
		need, hi = 3, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(b) && b[n] >= lo && b[n] <= hi {
		lo, hi = 0x80, 0xBF
		n++
	}

	return n
}
