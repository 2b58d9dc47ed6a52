package selection

import (
	"unicode"

	"github.com/modaltext/selectengine/buffer"
)

// SelectNumber replaces sel with the run of digits and '.' characters
// (optionally preceded by a '-' or '+' sign) that the cursor sits on. Every
// '.' in the run is included, not just one. It is a no-op if the cursor is
// not on a digit or '.'.
func SelectNumber(buf *buffer.Buffer, sel Selection, flags ObjectFlags) Selection {
	begin := buffer.Begin(buf)
	end := buffer.End(buf)
	it := buffer.At(buf, sel.Cursor)
	if it.AtEnd() {
		return sel
	}

	isDigitOrDot := func(r rune) bool { return unicode.IsDigit(r) || r == '.' }

	if !isDigitOrDot(it.Rune()) {
		return sel
	}

	first := SkipWhileReverse(it, begin, isDigitOrDot)
	if first.Coord() != begin.Coord() || !isDigitOrDot(first.Rune()) {
		first = first.Next()
	}
	// include a leading sign immediately before the digits
	if first.Coord() != begin.Coord() {
		sign := first.Previous()
		if sign.Rune() == '-' || sign.Rune() == '+' {
			first = sign
		}
	}

	last := SkipWhile(it, end, isDigitOrDot)
	last = last.Previous()

	anchor, cursor := first.Coord(), last.Coord()
	if flags.Has(ToBegin) && !flags.Has(ToEnd) {
		cursor = sel.Cursor
	}
	if flags.Has(ToEnd) && !flags.Has(ToBegin) {
		anchor = sel.Anchor
	}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
}
