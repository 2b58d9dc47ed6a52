// Package render paints selections in reverse video (Line, in highlight.go)
// and provides grapheme-aware display-width helpers. Line works per rune:
// it does not use the width helpers, so wide characters and multi-rune
// grapheme clusters are not measured when painting.
package render

import (
	"unicode"

	"golang.org/x/text/width"
)

// isCombining reports whether r is a combining mark (zero display width).
func isCombining(r rune) bool {
	return unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r)
}

// isVariationSelector reports whether r is a variation selector (zero width).
func isVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// isRegionalIndicator reports whether r is a regional indicator rune (flags).
func isRegionalIndicator(r rune) bool { return r >= 0x1F1E6 && r <= 0x1F1FF }

// isZWJ reports whether r is ZERO WIDTH JOINER.
func isZWJ(r rune) bool { return r == 0x200D }

// isEmoji reports common emoji ranges that render as width 2 on most terminals.
func isEmoji(r rune) bool {
	return isEmojiRange1(r) || isEmojiRange2(r)
}

func isEmojiRange1(r rune) bool {
	return (r >= 0x1F300 && r <= 0x1F5FF) ||
		(r >= 0x1F600 && r <= 0x1F64F) ||
		(r >= 0x1F680 && r <= 0x1F6FF) ||
		(r >= 0x1F700 && r <= 0x1F77F) ||
		(r >= 0x1F780 && r <= 0x1F7FF)
}

func isEmojiRange2(r rune) bool {
	return (r >= 0x1F800 && r <= 0x1F8FF) ||
		(r >= 0x1F900 && r <= 0x1F9FF) ||
		(r >= 0x1FA00 && r <= 0x1FAFF) ||
		(r >= 0x2600 && r <= 0x26FF) ||
		(r >= 0x2700 && r <= 0x27BF)
}

// RuneWidth returns the number of terminal columns used by r.
func RuneWidth(r rune) int {
	if isCombining(r) || isVariationSelector(r) || isZWJ(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	}
	if isEmoji(r) {
		return 2
	}
	return 1
}

// StringWidth returns the total terminal column width of s.
func StringWidth(s string) int {
	total := 0
	for _, r := range s {
		total += RuneWidth(r)
	}
	return total
}

// GraphemeStart walks backward from runes[pos] to the start of the
// grapheme cluster it belongs to, absorbing trailing combining marks,
// variation selectors, paired regional indicators, and ZWJ sequences.
func GraphemeStart(runes []rune, pos int) int {
	start := pos
	start = skipCombiningMarks(runes, start)
	start = handleRegionalIndicators(runes, start)
	start = handleZWJSequences(runes, start)
	if start < 0 {
		start = 0
	}
	return start
}

func skipCombiningMarks(runes []rune, start int) int {
	for start >= 0 && (isCombining(runes[start]) || isVariationSelector(runes[start])) {
		start--
	}
	return start
}

func handleRegionalIndicators(runes []rune, start int) int {
	if start >= 0 && isRegionalIndicator(runes[start]) {
		if start > 0 && isRegionalIndicator(runes[start-1]) {
			start--
		}
	}
	return start
}

func handleZWJSequences(runes []rune, start int) int {
	for {
		if start > 0 && isZWJ(runes[start-1]) {
			start -= 2
			start = skipCombiningMarks(runes, start)
			continue
		}
		break
	}
	return start
}

// ColsBetween returns the display-column distance between two rune indices
// into runes, regardless of which index is larger.
func ColsBetween(runes []rune, from, to int) int {
	if from < 0 {
		from = 0
	}
	if to < 0 {
		to = 0
	}
	if from > to {
		from, to = to, from
	}
	cols := 0
	for i := from; i < to && i < len(runes); i++ {
		cols += RuneWidth(runes[i])
	}
	return cols
}
