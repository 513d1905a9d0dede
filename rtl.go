package chat2pdf

import (
	"strings"

	"github.com/abdullahdiaa/garabic"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/text/unicode/bidi"
)

// rtlRanges covers the code point ranges of the supported
// right-to-left scripts: Arabic (including supplement and
// presentation forms), Hebrew, Syriac, Thaana, and Samaritan.
var rtlRanges = [][2]rune{
	{0x0590, 0x05FF}, // Hebrew
	{0x0600, 0x06FF}, // Arabic
	{0x0700, 0x074F}, // Syriac
	{0x0750, 0x077F}, // Arabic Supplement
	{0x0780, 0x07BF}, // Thaana
	{0x0800, 0x083F}, // Samaritan
	{0xFB50, 0xFDFF}, // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF}, // Arabic Presentation Forms-B
}

// ContainsRTL reports whether s contains at least one code point from
// a supported right-to-left script. It gates the more expensive
// normalization in FixRTL.
func ContainsRTL(s string) bool {
	return strings.ContainsFunc(s, isRTLRune)
}

func isRTLRune(r rune) bool {
	for _, rng := range rtlRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// containsArabic reports whether s contains a code point in the core
// Arabic block. Only Arabic requires glyph-joining letter shaping;
// the other RTL scripts are reordered without reshaping.
func containsArabic(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return r >= 0x0600 && r <= 0x06FF
	})
}

// FixRTL adjusts right-to-left text for renderers that lay glyphs out
// strictly left-to-right.
//
// The text is wrapped to at most width columns first, so the bidi
// pass reorders each visual line individually; reordering a whole
// multi-line paragraph would put the lines themselves in the wrong
// visual block order. Words longer than width are broken. Arabic
// lines are reshaped into contextual letterforms before reordering.
//
// Lines without RTL content still go through the bidi pass: it is a
// no-op for pure LTR lines and required for mixed-direction lines.
// Empty input yields empty output. Widths < 1 use DefaultWrapWidth.
func FixRTL(text string, width int) string {
	if text == "" {
		return ""
	}
	if width < 1 {
		width = DefaultWrapWidth
	}

	wrapped := wrap.String(wordwrap.String(text, width), width)

	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		if containsArabic(line) {
			line = garabic.Shape(line)
		}
		lines[i] = bidiDisplay(line)
	}
	return strings.Join(lines, "\n")
}

// bidiDisplay runs the Unicode bidirectional algorithm on one line
// and returns the runes in visual order.
func bidiDisplay(line string) string {
	if line == "" {
		return line
	}

	var p bidi.Paragraph
	if _, err := p.SetString(line); err != nil {
		return line
	}
	order, err := p.Order()
	if err != nil {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < order.NumRuns(); i++ {
		run := order.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = bidi.ReverseString(text)
		}
		b.WriteString(text)
	}
	return b.String()
}
