package selection

import (
	"github.com/clipperhouse/uax29/v2/words"
	"github.com/modaltext/selectengine/buffer"
)

// SelectUnicodeWord replaces sel with the Unicode-standard word (per
// UAX #29 word-boundary rules) the cursor sits on. Unlike SelectWord, this
// selector treats emoji, combining marks, and script-mixed runs the way a
// text shaping engine would rather than by the simplified alnum/punct/blank
// classification the rest of this package uses -- it is an additional,
// optional selector, not a replacement for the spec's own word motions,
// which must keep their exact documented classification.
func SelectUnicodeWord(buf *buffer.Buffer, sel Selection) Selection {
	line := buf.Line(sel.Cursor.Line)
	seg := words.FromString(line)
	offset := 0
	for seg.Next() {
		tok := seg.Value()
		start, end := offset, offset+len(tok)
		if sel.Cursor.Column >= start && sel.Cursor.Column < end {
			anchor := buffer.Coord{Line: sel.Cursor.Line, Column: start}
			cursor := buffer.Coord{Line: sel.Cursor.Line, Column: end - 1}
			return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
		}
		offset = end
	}
	return sel
}
