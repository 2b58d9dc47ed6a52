package buffer

import "unicode/utf8"

// Iterator walks a Buffer one Unicode codepoint at a time, forward or
// backward, tracking its position as a Coord. It is the primitive every
// selector builds on: classification always happens on the rune under the
// iterator, and motion always happens through Next/Previous.
//
// An Iterator may point one-past-the-end of the buffer (the sentinel
// position returned once Next has been called at BackCoord); dereferencing
// that position is invalid, Next is a no-op there, and Previous steps back
// to BackCoord.
type Iterator struct {
	buf *Buffer
	pos Coord
	end bool
}

// At returns an iterator positioned at coord.
func At(buf *Buffer, coord Coord) Iterator {
	return Iterator{buf: buf, pos: coord}
}

// Begin returns an iterator at the first byte of the buffer.
func Begin(buf *Buffer) Iterator {
	return Iterator{buf: buf, pos: Coord{0, 0}}
}

// End returns the one-past-the-end sentinel iterator.
func End(buf *Buffer) Iterator {
	return Iterator{buf: buf, pos: buf.BackCoord(), end: true}
}

// Coord returns the iterator's current position.
func (it Iterator) Coord() Coord {
	return it.pos
}

// AtEnd reports whether the iterator is at the one-past-the-end sentinel.
func (it Iterator) AtEnd() bool {
	return it.end
}

// Rune decodes the codepoint at the iterator's position. On an end iterator
// it decodes the final newline at BackCoord, which is not a codepoint of the
// iteration; callers must check AtEnd first.
func (it Iterator) Rune() rune {
	line := it.buf.Line(it.pos.Line)
	r, _ := utf8.DecodeRuneInString(line[it.pos.Column:])
	return r
}

// RuneLen returns the byte width of the codepoint at the iterator's
// position.
func (it Iterator) RuneLen() int {
	line := it.buf.Line(it.pos.Line)
	_, size := utf8.DecodeRuneInString(line[it.pos.Column:])
	return size
}

// Next advances the iterator by one codepoint, crossing line boundaries by
// treating the trailing "\n" of each line as a single codepoint. Calling
// Next at the end sentinel is a no-op.
func (it Iterator) Next() Iterator {
	if it.end {
		return it
	}
	if it.buf.ByteAt(it.pos) == '\n' {
		if it.buf.IsLastLine(it.pos.Line) {
			return Iterator{buf: it.buf, pos: it.pos, end: true}
		}
		return Iterator{buf: it.buf, pos: Coord{Line: it.pos.Line + 1, Column: 0}}
	}
	_, size := utf8.DecodeRuneInString(it.buf.Line(it.pos.Line)[it.pos.Column:])
	return Iterator{buf: it.buf, pos: Coord{Line: it.pos.Line, Column: it.pos.Column + size}}
}

// Previous moves the iterator back by one codepoint. Calling Previous at the
// buffer's first position is a no-op.
func (it Iterator) Previous() Iterator {
	pos := it.pos
	if it.end {
		return Iterator{buf: it.buf, pos: pos}
	}
	if pos.Column == 0 {
		if pos.Line == 0 {
			return it
		}
		prevLine := pos.Line - 1
		lineLen := it.buf.LineLen(prevLine)
		return Iterator{buf: it.buf, pos: Coord{Line: prevLine, Column: lineLen - 1}}
	}
	line := it.buf.Line(pos.Line)
	col := pos.Column
	for col > 0 {
		col--
		if utf8.RuneStart(line[col]) {
			break
		}
	}
	return Iterator{buf: it.buf, pos: Coord{Line: pos.Line, Column: col}}
}

// NextSaturating advances by one codepoint unless doing so would pass end,
// in which case it returns end unchanged. Mirrors the source's utf8::next
// saturating-advance helper used throughout the selector implementations.
func NextSaturating(it, end Iterator) Iterator {
	if it.pos == end.pos && it.end == end.end {
		return it
	}
	n := it.Next()
	if end.end && !it.end && n.pos == end.pos {
		return End(it.buf)
	}
	return n
}

// PreviousSaturating moves back by one codepoint unless doing so would pass
// begin, in which case it returns begin unchanged.
func PreviousSaturating(it, begin Iterator) Iterator {
	if it.pos == begin.pos && it.end == begin.end {
		return it
	}
	return it.Previous()
}
