package selection

import (
	"unicode"

	"github.com/modaltext/selectengine/buffer"
)

// SelectWhitespaces replaces sel with the run of horizontal-blank
// characters the cursor sits on. It is a no-op if the cursor is not on
// whitespace.
func SelectWhitespaces(buf *buffer.Buffer, sel Selection) Selection {
	it := buffer.At(buf, sel.Cursor)
	if it.AtEnd() || !IsHorizontalBlank(it.Rune()) {
		return sel
	}
	begin := buffer.Begin(buf)
	end := buffer.End(buf)
	first := SkipWhileReverse(it, begin, IsHorizontalBlank)
	if first.Coord() != begin.Coord() || !IsHorizontalBlank(first.Rune()) {
		first = first.Next()
	}
	last := SkipWhile(it, end, IsHorizontalBlank)
	last = last.Previous()
	return Selection{Anchor: first.Coord(), Cursor: last.Coord(), TargetColumn: last.Coord().Column}
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// SelectSentence replaces sel with the sentence the cursor sits in. A
// sentence runs from just after the previous sentence-ending punctuation
// (or paragraph start) through the next sentence-ending punctuation
// (inclusive) or paragraph end. Flags.Inner excludes the trailing
// whitespace that follows the terminal punctuation.
func SelectSentence(buf *buffer.Buffer, sel Selection, flags ObjectFlags) Selection {
	begin := buffer.Begin(buf)
	end := buffer.End(buf)
	it := buffer.At(buf, sel.Cursor)
	if it.AtEnd() {
		return sel
	}

	start := it
	for start.Coord() != begin.Coord() {
		prev := start.Previous()
		if isSentenceEnd(prev.Rune()) {
			break
		}
		if isBlankLine(buf, prev.Coord().Line) && isBlankLine(buf, start.Coord().Line) {
			break
		}
		start = prev
	}
	start = SkipWhile(start, end, IsBlank)

	stop := it
	for !stop.AtEnd() && !isSentenceEnd(stop.Rune()) {
		stop = stop.Next()
	}
	last := stop
	if !flags.Has(Inner) {
		trailing := stop.Next()
		trailing = SkipWhile(trailing, end, func(r rune) bool { return IsHorizontalBlank(r) })
		if trailing.Coord() != stop.Coord() {
			last = trailing.Previous()
		}
	}

	anchor, cursor := start.Coord(), last.Coord()
	if flags.Has(ToBegin) && !flags.Has(ToEnd) {
		cursor = sel.Cursor
	}
	if flags.Has(ToEnd) && !flags.Has(ToBegin) {
		anchor = sel.Anchor
	}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
}

func isBlankLine(buf *buffer.Buffer, line int) bool {
	content := buf.Line(line)
	for _, r := range content {
		if r == '\n' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// SelectParagraph replaces sel with the paragraph the cursor sits in: a
// maximal run of non-blank lines, bounded by blank lines or buffer edges.
// With Flags.Inner, trailing blank lines that follow the paragraph are
// excluded; without it, one trailing blank-line run is included so that
// repeated paragraph motion steps cleanly from paragraph to paragraph.
func SelectParagraph(buf *buffer.Buffer, sel Selection, flags ObjectFlags) Selection {
	cursorLine := sel.Cursor.Line
	onBlank := isBlankLine(buf, cursorLine)

	firstLine := cursorLine
	for firstLine > 0 && isBlankLine(buf, firstLine-1) == onBlank {
		firstLine--
	}
	lastLine := cursorLine
	for lastLine < buf.LineCount()-1 && isBlankLine(buf, lastLine+1) == onBlank {
		lastLine++
	}

	if onBlank {
		anchor := buffer.Coord{Line: firstLine, Column: 0}
		cursor := buffer.Coord{Line: lastLine, Column: buf.LineLen(lastLine) - 1}
		return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: EndOfLineColumn}
	}

	endLine := lastLine
	if !flags.Has(Inner) {
		for endLine < buf.LineCount()-1 && isBlankLine(buf, endLine+1) {
			endLine++
		}
	}

	anchor := buffer.Coord{Line: firstLine, Column: 0}
	cursor := buffer.Coord{Line: endLine, Column: buf.LineLen(endLine) - 1}
	if flags.Has(ToBegin) && !flags.Has(ToEnd) {
		cursor = sel.Cursor
	}
	if flags.Has(ToEnd) && !flags.Has(ToBegin) {
		anchor = sel.Anchor
	}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: EndOfLineColumn}
}

func indentWidth(line string, tabstop int) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabstop - (width % tabstop)
		default:
			return width
		}
	}
	return width
}

func lineIsBlankOrShallower(buf *buffer.Buffer, line, indent, tabstop int) bool {
	if isBlankLine(buf, line) {
		return true
	}
	return indentWidth(buf.Line(line), tabstop) < indent
}

// SelectIndentBlock replaces sel with the block of lines sharing at least
// the cursor line's indentation: the maximal contiguous run of lines, above
// and below the cursor, whose indent is greater than or equal to the
// cursor line's indent, blank lines being considered part of the block.
func SelectIndentBlock(buf *buffer.Buffer, sel Selection, opts Options) Selection {
	tabstop := 8
	if opts != nil {
		tabstop = opts.Tabstop()
	}
	cursorLine := sel.Cursor.Line
	indent := indentWidth(buf.Line(cursorLine), tabstop)

	first := cursorLine
	for first > 0 && (isBlankLine(buf, first-1) || !lineIsBlankOrShallower(buf, first-1, indent, tabstop)) {
		first--
	}
	last := cursorLine
	for last < buf.LineCount()-1 && (isBlankLine(buf, last+1) || !lineIsBlankOrShallower(buf, last+1, indent, tabstop)) {
		last++
	}
	// trim any leading/trailing blank lines pulled in at the edges
	for first < last && isBlankLine(buf, first) {
		first++
	}
	for last > first && isBlankLine(buf, last) {
		last--
	}

	anchor := buffer.Coord{Line: first, Column: 0}
	cursor := buffer.Coord{Line: last, Column: buf.LineLen(last) - 1}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: EndOfLineColumn}
}

// SelectArgument replaces sel with the comma-separated function-call
// argument the cursor sits in, bounded by the enclosing parentheses and
// unnested commas. The commas themselves are never part of the result; the
// blanks that follow the preceding comma are. Flags.Inner drops those
// leading blanks; trailing blanks before the next comma or ')' are kept.
func SelectArgument(buf *buffer.Buffer, sel Selection, flags ObjectFlags) Selection {
	rng, ok := FindSurrounding(buf, sel.Cursor, "(", ")", ToBegin|ToEnd, 0)
	if !ok {
		return sel
	}
	open, close := rng.Begin, rng.End

	begin := buffer.At(buf, open).Next()
	end := buffer.At(buf, close)

	depth := 0
	argStart := begin
	cur := begin
	for cur.Coord().Less(end.Coord()) {
		switch cur.Rune() {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				next := cur.Next()
				if sel.Cursor.Less(next.Coord()) || sel.Cursor == cur.Coord() {
					return buildArgument(buf, argStart.Coord(), cur.Previous().Coord(), flags)
				}
				argStart = next
			}
		}
		cur = cur.Next()
	}
	// last argument, up to close
	last := end.Previous()
	if last.Coord().Less(argStart.Coord()) {
		return buildArgument(buf, argStart.Coord(), argStart.Coord(), flags)
	}
	return buildArgument(buf, argStart.Coord(), last.Coord(), flags)
}

func buildArgument(buf *buffer.Buffer, start, stop buffer.Coord, flags ObjectFlags) Selection {
	anchor, cursor := start, stop
	if flags.Has(Inner) {
		// Every argument but the first carries a leading separator space
		// (the byte right after the preceding comma); trim it so deleting
		// an inner argument tidies up the remaining list. The first
		// argument has no leading separator to trim, so this is a no-op
		// for it.
		it := buffer.At(buf, anchor)
		end := buffer.At(buf, cursor)
		anchor = SkipWhile(it, end, IsHorizontalBlank).Coord()
	}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
}
