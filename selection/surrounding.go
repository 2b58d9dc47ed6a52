package selection

import "github.com/modaltext/selectengine/buffer"

// matchForward reports whether the buffer content starting at it equals s,
// without mutating it. On success it returns an iterator positioned one
// codepoint past the match.
func matchForward(it buffer.Iterator, s []rune) (buffer.Iterator, bool) {
	for _, want := range s {
		if it.AtEnd() || it.Rune() != want {
			return it, false
		}
		it = it.Next()
	}
	return it, true
}

// FindClosing scans forward from it for the occurrence of closing that
// balances initLevel pending opens: each closing match decrements the
// level, each opening match increments it (only when nestable); the scan
// stops once the level reaches zero and returns an iterator at the last
// rune of the matched closing delimiter. Returns the zero Iterator and
// false if the buffer ends first.
func FindClosing(buf *buffer.Buffer, it buffer.Iterator, opening, closing []rune, nestable bool, initLevel int) (buffer.Iterator, bool) {
	level := initLevel
	for !it.AtEnd() {
		if end, ok := matchForward(it, closing); ok {
			level--
			if level == 0 {
				return end.Previous(), true
			}
			it = end
			continue
		}
		if nestable {
			if end, ok := matchForward(it, opening); ok {
				level++
				it = end
				continue
			}
		}
		it = it.Next()
	}
	return buffer.Iterator{}, false
}

// findOpening is FindClosing's mirror, scanning backward from it for the
// occurrence of opening that balances initLevel pending closes.
func findOpening(buf *buffer.Buffer, it buffer.Iterator, opening, closing []rune, nestable bool, initLevel int) (buffer.Iterator, bool) {
	begin := buffer.Begin(buf)
	level := initLevel
	for {
		if nestable {
			if _, ok := matchForward(it, closing); ok {
				level++
			}
		}
		if _, ok := matchForward(it, opening); ok {
			level--
			if level == 0 {
				return it, true
			}
		}
		if it.Coord() == begin.Coord() {
			return buffer.Iterator{}, false
		}
		it = it.Previous()
	}
}

// locateOpener finds the opener `level` pairs out from cursor (0 = the
// immediate enclosing pair) by running findOpening with an initial level of
// level+1. If cursor sits exactly on the closing delimiter of the pair it
// belongs to, the scan resumes just before that closer instead of counting
// it as an extra nested level to skip.
func locateOpener(buf *buffer.Buffer, cursor buffer.Coord, opening, closing []rune, nestable bool, level int) (buffer.Iterator, bool) {
	it := buffer.At(buf, cursor)
	if nestable {
		if _, ok := matchForward(it, closing); ok {
			it = it.Previous()
		}
	}
	return findOpening(buf, it, opening, closing, nestable, level+1)
}

// FindSurrounding locates the opening/closing delimiter pair enclosing
// cursor, `level` pairs out (0 = innermost). opening and closing are byte
// strings; if they are identical (e.g. quotes) the pair is non-nestable,
// since nested occurrences of the same delimiter can't be told apart.
// Flags.ToBegin extends the result leftward to the opener, Flags.ToEnd
// extends it rightward to the closer; a flag set lacking one of them
// leaves that side at cursor. Returns false if no such pair exists.
func FindSurrounding(buf *buffer.Buffer, cursor buffer.Coord, opening, closing string, flags ObjectFlags, level int) (Range, bool) {
	openRunes, closeRunes := []rune(opening), []rune(closing)
	nestable := opening != closing

	start := cursor
	if flags.Has(ToBegin) {
		openIt, ok := locateOpener(buf, cursor, openRunes, closeRunes, nestable, level)
		if !ok {
			return Range{}, false
		}
		start = openIt.Coord()
	}

	end := cursor
	if flags.Has(ToEnd) {
		searchFrom := buffer.At(buf, cursor)
		if flags.Has(ToBegin) {
			searchFrom, _ = matchForward(buffer.At(buf, start), openRunes)
		}
		closeLast, ok := FindClosing(buf, searchFrom, openRunes, closeRunes, nestable, 1)
		if !ok {
			return Range{}, false
		}
		if closeLast.Coord().Less(cursor) {
			return Range{}, false
		}
		end = closeLast.Coord()
	}

	return Range{Begin: start, End: end}, true
}

// SelectSurrounding replaces sel with the span enclosed by the nearest
// opening/closing delimiter pair around the cursor. Flags.Inner excludes
// the delimiters themselves from the result. When the cursor's current
// selection already exactly matches the innermost enclosing pair at level
// 0 (inner or outer, matching flags), the search retries one level further
// out, so that invoking the same text object repeatedly expands outward
// through nested delimiters.
func SelectSurrounding(buf *buffer.Buffer, sel Selection, opening, closing string, flags ObjectFlags) Selection {
	level := 0
	for {
		rng, ok := FindSurrounding(buf, sel.Cursor, opening, closing, flags, level)
		if !ok {
			return sel
		}
		result := surroundingResult(buf, rng, flags)
		if result.Min() == sel.Min() && result.Max() == sel.Max() {
			level++
			continue
		}
		return result
	}
}

func surroundingResult(buf *buffer.Buffer, rng Range, flags ObjectFlags) Selection {
	begin, end := rng.Begin, rng.End
	if flags.Has(Inner) {
		beginIt := buffer.At(buf, begin).Next()
		endIt := buffer.At(buf, end).Previous()
		if endIt.Coord().Less(beginIt.Coord()) {
			// empty interior: anchor and cursor collapse to the opener's
			// following position.
			return Selection{Anchor: beginIt.Coord(), Cursor: beginIt.Coord(), TargetColumn: beginIt.Coord().Column}
		}
		begin, end = beginIt.Coord(), endIt.Coord()
	}
	return Selection{Anchor: begin, Cursor: end, TargetColumn: end.Column}
}
