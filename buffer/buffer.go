// Package buffer implements the line-based text storage that the selection
// engine traverses. A Buffer is an ordered sequence of lines, each of which
// includes its trailing newline byte; the final line of a non-empty buffer
// always ends in "\n" so that every existing line has at least one valid
// column.
package buffer

import (
	"strings"
)

// Coord is a (line, column) pair identifying a byte offset within a Buffer.
// Column is a byte offset into the line, not a rune or display-column index.
// Ordering is lexicographic: (l1,c1) < (l2,c2) iff l1<l2, or l1==l2 && c1<c2.
type Coord struct {
	Line   int
	Column int
}

// Less reports whether c sorts strictly before o.
func (c Coord) Less(o Coord) bool {
	if c.Line != o.Line {
		return c.Line < o.Line
	}
	return c.Column < o.Column
}

// LessEq reports whether c sorts at or before o.
func (c Coord) LessEq(o Coord) bool {
	return c == o || c.Less(o)
}

// Min returns the smaller of a and b.
func Min(a, b Coord) Coord {
	if a.Less(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Coord) Coord {
	if a.Less(b) {
		return b
	}
	return a
}

// Buffer is an indexed sequence of lines. Every line is stored with its
// trailing newline. Buffer is immutable from the selection engine's point of
// view: selectors only ever read it.
type Buffer struct {
	lines []string
}

// New builds a Buffer from raw text, splitting on "\n" and restoring the
// trailing newline on every line except that the final line is always given
// one, matching the editor's on-disk convention that files end in a newline.
func New(text string) *Buffer {
	if text == "" {
		return &Buffer{lines: []string{"\n"}}
	}
	raw := strings.Split(text, "\n")
	// strings.Split on "a\nb\n" yields ["a","b",""]; drop the trailing empty
	// segment produced by the final newline, since we re-add it per line.
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = l + "\n"
	}
	return &Buffer{lines: lines}
}

// NewFromLines builds a Buffer from lines that already carry their trailing
// newline (the last one included). Used by tests and callers that already
// have buffer-shaped data.
func NewFromLines(lines []string) *Buffer {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Buffer{lines: cp}
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the content of the given line, trailing newline included.
func (b *Buffer) Line(line int) string {
	return b.lines[line]
}

// LineLen returns the byte length of the given line, trailing newline
// included.
func (b *Buffer) LineLen(line int) int {
	return len(b.lines[line])
}

// BackCoord returns the coordinate of the last valid byte in the buffer: the
// newline of the final line.
func (b *Buffer) BackCoord() Coord {
	last := len(b.lines) - 1
	return Coord{Line: last, Column: len(b.lines[last]) - 1}
}

// ByteAt returns the byte at coord.
func (b *Buffer) ByteAt(c Coord) byte {
	return b.lines[c.Line][c.Column]
}

// ClampCoord pulls an out-of-range coordinate back into the buffer, clamping
// the line and then the column against that line's length.
func (b *Buffer) ClampCoord(c Coord) Coord {
	if c.Line < 0 {
		return Coord{0, 0}
	}
	if c.Line >= len(b.lines) {
		return b.BackCoord()
	}
	if c.Column < 0 {
		c.Column = 0
	}
	if maxCol := len(b.lines[c.Line]) - 1; c.Column > maxCol {
		c.Column = maxCol
	}
	return c
}

// String returns the text between two coordinates, inclusive of both
// endpoints, concatenating across lines as needed. begin must not be after
// end.
func (b *Buffer) String(begin, end Coord) string {
	if end.Less(begin) {
		begin, end = end, begin
	}
	if begin.Line == end.Line {
		return b.lines[begin.Line][begin.Column : end.Column+1]
	}
	var sb strings.Builder
	sb.WriteString(b.lines[begin.Line][begin.Column:])
	for l := begin.Line + 1; l < end.Line; l++ {
		sb.WriteString(b.lines[l])
	}
	sb.WriteString(b.lines[end.Line][:end.Column+1])
	return sb.String()
}

// IsEndOfLine reports whether coord sits on the line's trailing newline.
func (b *Buffer) IsEndOfLine(c Coord) bool {
	return b.ByteAt(c) == '\n'
}

// IsLastLine reports whether line is the final line of the buffer.
func (b *Buffer) IsLastLine(line int) bool {
	return line == len(b.lines)-1
}
