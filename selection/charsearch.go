package selection

import "github.com/modaltext/selectengine/buffer"

// SelectTo extends sel forward to the next occurrence of target after the
// cursor. If inclusive is false, the selection stops one codepoint short of
// target (selecting up to but not including it). This is a no-op if target
// does not occur again before the end of the buffer.
func SelectTo(buf *buffer.Buffer, sel Selection, target rune, inclusive bool) Selection {
	it := buffer.At(buf, sel.Cursor).Next()
	for !it.AtEnd() {
		if it.Rune() == target {
			cursor := it.Coord()
			if !inclusive {
				cursor = it.Previous().Coord()
			}
			return Selection{Anchor: sel.Anchor, Cursor: cursor, TargetColumn: cursor.Column}
		}
		it = it.Next()
	}
	return sel
}

// SelectToReverse extends sel backward to the previous occurrence of target
// before the cursor. If inclusive is false, the selection stops one
// codepoint short of target.
func SelectToReverse(buf *buffer.Buffer, sel Selection, target rune, inclusive bool) Selection {
	begin := buffer.Begin(buf)
	it := buffer.At(buf, sel.Cursor)
	if it.Coord() == begin.Coord() {
		return sel
	}
	it = it.Previous()
	for {
		if it.Rune() == target {
			cursor := it.Coord()
			if !inclusive {
				cursor = it.Next().Coord()
			}
			return Selection{Anchor: sel.Anchor, Cursor: cursor, TargetColumn: cursor.Column}
		}
		if it.Coord() == begin.Coord() {
			return sel
		}
		it = it.Previous()
	}
}
