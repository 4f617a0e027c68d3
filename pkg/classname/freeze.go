package classname

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// placeholderAlphabet holds the sixteen symbols a content digest is spelled
// with. None of them is whitespace or source punctuation.
var placeholderAlphabet = []rune("αβγδεζηθικλμνξοπ")

// PlaceholderFiller pads placeholders longer than the digest. It is also
// used for the width padding handed to the re-wrap callback.
const PlaceholderFiller = 'ω'

// digestSymbols is the number of placeholder symbols a 64-bit digest yields.
const digestSymbols = 16

// Freeze returns an opaque placeholder for content that takes the same
// display width. Every placeholder symbol is one column wide, so wide runes
// in content take two symbols each. Identical content always yields the
// identical placeholder. The placeholder contains no whitespace, so a word
// wrapper never splits it.
func Freeze(content string) string {
	if content == "" {
		return ""
	}
	n := max(widthCondition.StringWidth(content), 1)

	sum := xxhash.Sum64String(content)

	var b strings.Builder
	b.Grow(n * 2)
	for i := range n {
		if i >= digestSymbols {
			b.WriteRune(PlaceholderFiller)
			continue
		}
		nibble := (sum >> (60 - 4*uint(i))) & 0xF
		b.WriteRune(placeholderAlphabet[nibble])
	}
	return b.String()
}

// normalizeSpace collapses whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// padding returns n filler characters.
func padding(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(PlaceholderFiller), n)
}
