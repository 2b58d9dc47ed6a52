package selection

import "github.com/modaltext/selectengine/buffer"

// SelectLine replaces sel with the whole of the cursor's current line,
// including its trailing newline, anchored at column 0.
func SelectLine(buf *buffer.Buffer, sel Selection) Selection {
	line := sel.Cursor.Line
	anchor := buffer.Coord{Line: line, Column: 0}
	cursor := buffer.Coord{Line: line, Column: buf.LineLen(line) - 1}
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: EndOfLineColumn}
}

// SelectToLineEnd moves sel's cursor to the last column of its line (the
// trailing newline), keeping the anchor fixed, and sets the target column
// to the end-of-line sentinel so later vertical motion keeps hugging line
// ends.
func SelectToLineEnd(buf *buffer.Buffer, sel Selection) Selection {
	line := sel.Cursor.Line
	cursor := buffer.Coord{Line: line, Column: buf.LineLen(line) - 1}
	sel.Cursor = cursor
	sel.TargetColumn = EndOfLineColumn
	return sel
}

// SelectToLineBegin moves sel's cursor to the first column of its line,
// keeping the anchor fixed. Per this engine's resolved reading of the
// source's documented quirk, the resulting coordinate is always the
// explicit (line, 0) rather than whatever the buffer's internal begin()
// iterator happens to normalize to.
func SelectToLineBegin(buf *buffer.Buffer, sel Selection) Selection {
	cursor := buffer.Coord{Line: sel.Cursor.Line, Column: 0}
	sel.Cursor = cursor
	sel.TargetColumn = 0
	return sel
}

// SelectToFirstNonBlank moves sel's cursor to the first non-horizontal-
// blank character of its line, or to the end of the line if the line is
// entirely blank.
func SelectToFirstNonBlank(buf *buffer.Buffer, sel Selection) Selection {
	line := sel.Cursor.Line
	it := buffer.At(buf, buffer.Coord{Line: line, Column: 0})
	end := buffer.At(buf, buffer.Coord{Line: line, Column: buf.LineLen(line) - 1})
	it = SkipWhile(it, end, IsHorizontalBlank)
	sel.Cursor = it.Coord()
	sel.TargetColumn = it.Coord().Column
	return sel
}
