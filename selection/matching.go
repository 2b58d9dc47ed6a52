package selection

import "github.com/modaltext/selectengine/buffer"

var matchPairs = map[rune]rune{
	'(': ')', ')': '(',
	'{': '}', '}': '{',
	'[': ']', ']': '[',
}

var openers = map[rune]bool{'(': true, '{': true, '[': true}

// SelectMatching moves sel's cursor to the bracket matching the one under
// the cursor (counting nested pairs of the same kind along the way). If the
// cursor is not on a bracket character, this is a no-op and sel is returned
// unchanged.
func SelectMatching(buf *buffer.Buffer, sel Selection) Selection {
	it := buffer.At(buf, sel.Cursor)
	if it.AtEnd() {
		return sel
	}
	r := it.Rune()
	other, ok := matchPairs[r]
	if !ok {
		return sel
	}

	depth := 1
	if openers[r] {
		end := buffer.End(buf)
		for cur := it.Next(); !cur.AtEnd(); cur = cur.Next() {
			switch cur.Rune() {
			case r:
				depth++
			case other:
				depth--
				if depth == 0 {
					return Selection{Anchor: sel.Anchor, Cursor: cur.Coord(), TargetColumn: cur.Coord().Column}
				}
			}
			if cur.Coord() == end.Coord() {
				break
			}
		}
		return sel
	}

	begin := buffer.Begin(buf)
	for cur := it.Previous(); ; cur = cur.Previous() {
		switch cur.Rune() {
		case r:
			depth++
		case other:
			depth--
			if depth == 0 {
				return Selection{Anchor: sel.Anchor, Cursor: cur.Coord(), TargetColumn: cur.Coord().Column}
			}
		}
		if cur.Coord() == begin.Coord() {
			break
		}
	}
	return sel
}
