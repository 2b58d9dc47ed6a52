package selection

import "github.com/modaltext/selectengine/buffer"

// SkipWhile advances it forward while pred holds on the rune under it,
// stopping at the first rune for which pred is false, or at end.
func SkipWhile(it buffer.Iterator, end buffer.Iterator, pred func(rune) bool) buffer.Iterator {
	for !it.AtEnd() && it.Coord() != end.Coord() && pred(it.Rune()) {
		it = it.Next()
	}
	return it
}

// SkipWhileReverse moves it backward while pred holds on the rune under it,
// stopping at the first rune for which pred is false, or at begin.
func SkipWhileReverse(it buffer.Iterator, begin buffer.Iterator, pred func(rune) bool) buffer.Iterator {
	for it.Coord() != begin.Coord() && pred(it.Rune()) {
		it = it.Previous()
	}
	return it
}
