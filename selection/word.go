package selection

import "github.com/modaltext/selectengine/buffer"

// SelectToNextWord extends sel from its cursor to the start of the next
// word: the remainder of the current word or punctuation run is skipped
// (if the cursor sits inside one), then any run of blanks, and the new
// cursor lands on the first character of the following word. It is a
// no-op, returning sel unchanged, if the cursor is already at the end of
// the buffer.
func SelectToNextWord(buf *buffer.Buffer, sel Selection, wt WordType, opts Options) Selection {
	it := buffer.At(buf, sel.Cursor)
	end := buffer.End(buf)
	if it.AtEnd() {
		return sel
	}
	cat := Categorize(it.Rune(), wt, opts)
	if cat != CategoryBlank {
		it = SkipWhile(it, end, func(r rune) bool { return Categorize(r, wt, opts) == cat })
	}
	it = SkipWhile(it, end, func(r rune) bool { return Categorize(r, wt, opts) == CategoryBlank })
	cursor := buf.BackCoord()
	if !it.AtEnd() {
		cursor = it.Coord()
	}
	return Selection{Anchor: sel.Cursor, Cursor: cursor, TargetColumn: cursor.Column}
}

// SelectToNextWordEnd extends sel from its cursor to the end of the next
// word: advances past the cursor, skips any blanks, then selects through
// to the last character of the following word or punctuation run.
func SelectToNextWordEnd(buf *buffer.Buffer, sel Selection, wt WordType, opts Options) Selection {
	begin := buffer.At(buf, sel.Cursor)
	end := buffer.End(buf)
	it := begin.Next()
	if it.AtEnd() {
		return sel
	}
	it = SkipWhile(it, end, func(r rune) bool { return Categorize(r, wt, opts) == CategoryBlank })
	if it.AtEnd() {
		return sel
	}
	cat := Categorize(it.Rune(), wt, opts)
	it = SkipWhile(it, end, func(r rune) bool { return Categorize(r, wt, opts) == cat })
	cursor := it.Previous().Coord()
	return Selection{Anchor: sel.Cursor, Cursor: cursor, TargetColumn: cursor.Column}
}

// SelectToPreviousWord extends sel from its cursor backward to the start of
// the previous word, skipping any blanks first.
func SelectToPreviousWord(buf *buffer.Buffer, sel Selection, wt WordType, opts Options) Selection {
	begin := buffer.Begin(buf)
	it := buffer.At(buf, sel.Cursor)
	if it.Coord() == begin.Coord() {
		return sel
	}
	it = it.Previous()
	it = SkipWhileReverse(it, begin, func(r rune) bool { return Categorize(r, wt, opts) == CategoryBlank })
	if it.Coord() == begin.Coord() && Categorize(it.Rune(), wt, opts) == CategoryBlank {
		return Selection{Anchor: sel.Cursor, Cursor: begin.Coord(), TargetColumn: begin.Coord().Column}
	}
	cat := Categorize(it.Rune(), wt, opts)
	prev := SkipWhileReverse(it, begin, func(r rune) bool { return Categorize(r, wt, opts) == cat })
	cursor := prev.Coord()
	if prev.Coord() != begin.Coord() || Categorize(prev.Rune(), wt, opts) != cat {
		cursor = prev.Next().Coord()
	}
	return Selection{Anchor: sel.Cursor, Cursor: cursor, TargetColumn: cursor.Column}
}

// SelectWord replaces sel with the whole word (or punctuation run) the
// cursor sits on, at the given granularity; on a blank it is a no-op and
// returns sel unchanged. Flags controls whether
// the result is anchored to the word's start, its end, or both (the
// default, a full-word selection).
func SelectWord(buf *buffer.Buffer, sel Selection, wt WordType, flags ObjectFlags, opts Options) Selection {
	it := buffer.At(buf, sel.Cursor)
	if it.AtEnd() {
		return sel
	}
	begin := buffer.Begin(buf)
	end := buffer.End(buf)
	cat := Categorize(it.Rune(), wt, opts)
	if cat == CategoryBlank {
		return sel
	}

	first := it
	if flags.Has(ToBegin) || flags == 0 {
		first = SkipWhileReverse(it, begin, func(r rune) bool { return Categorize(r, wt, opts) == cat })
		if first.Coord() != begin.Coord() || Categorize(first.Rune(), wt, opts) != cat {
			first = first.Next()
		}
	}
	last := it
	if flags.Has(ToEnd) || flags == 0 {
		last = SkipWhile(it, end, func(r rune) bool { return Categorize(r, wt, opts) == cat })
		last = last.Previous()
	}

	anchor := sel.Anchor
	cursor := sel.Cursor
	if flags.Has(ToBegin) || flags == 0 {
		anchor = first.Coord()
	}
	if flags.Has(ToEnd) || flags == 0 {
		cursor = last.Coord()
	}
	if !flags.Has(ToBegin) && !flags.Has(ToEnd) {
		// no directional flags: whole word, anchor at first, cursor at last
		anchor, cursor = first.Coord(), last.Coord()
	}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
}
