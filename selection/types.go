// Package selection implements Kakoune-style selection motions and objects
// over a buffer.Buffer. Every selector is a pure function of the form
// (buffer, selections, ...) -> selections, never mutating its input list.
package selection

import "github.com/modaltext/selectengine/buffer"

// WordType distinguishes the two word-classification granularities: Word
// groups runs of the same character class (alnum/underscore, punctuation,
// blank), while WORD treats any run of non-blank characters as one word.
type WordType int

const (
	// Word is the narrow classification: alnum+underscore, punctuation, and
	// blank are each their own class.
	Word WordType = iota
	// WORDType is the broad classification: blank vs. non-blank only.
	WORDType
)

// ObjectFlags controls how a text-object selector extends the current
// selection: to its beginning, to its end, or to the innermost span
// excluding delimiters.
type ObjectFlags uint8

const (
	// ToBegin extends the selection back to the object's start.
	ToBegin ObjectFlags = 1 << iota
	// ToEnd extends the selection forward to the object's end.
	ToEnd
	// Inner selects only the object's interior, excluding surrounding
	// delimiters or whitespace.
	Inner
)

// Has reports whether f contains all bits of other.
func (f ObjectFlags) Has(other ObjectFlags) bool {
	return f&other == other
}

// EndOfLineColumn is a sentinel column value meaning "the end of this line,
// wherever that is" -- used as a selection's remembered target column after
// an operation like select_to_line_end, so that subsequent vertical motion
// keeps hugging each line's end.
const EndOfLineColumn = -1

// Selection is a single anchor/cursor span plus any capture groups recorded
// by the regex selector that produced it.
type Selection struct {
	Anchor   buffer.Coord
	Cursor   buffer.Coord
	// TargetColumn remembers the intended display column across vertical
	// motions, or EndOfLineColumn to mean "always hug line end".
	TargetColumn int
	// Captures holds the byte ranges of regex capture groups from the match
	// that produced this selection, group 0 first. Nil if not regex-derived.
	Captures []Range
}

// Range is a span of buffer text, inclusive of both endpoints (matching
// Kakoune's own inclusive convention).
type Range struct {
	Begin buffer.Coord
	End   buffer.Coord
}

// Min returns the coordinate-wise minimum of the selection's anchor and
// cursor.
func (s Selection) Min() buffer.Coord {
	return buffer.Min(s.Anchor, s.Cursor)
}

// Max returns the coordinate-wise maximum of the selection's anchor and
// cursor.
func (s Selection) Max() buffer.Coord {
	return buffer.Max(s.Anchor, s.Cursor)
}

// IsForward reports whether the selection's anchor is at or before its
// cursor.
func (s Selection) IsForward() bool {
	return s.Anchor.LessEq(s.Cursor)
}

// NewSelection builds a selection whose target column is derived from the
// cursor's column (not end-of-line sticky).
func NewSelection(anchor, cursor buffer.Coord) Selection {
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
}

// WithCursor returns a copy of s with a new cursor, anchor held fixed, and
// target column recomputed from the new cursor.
func (s Selection) WithCursor(cursor buffer.Coord) Selection {
	s.Cursor = cursor
	s.TargetColumn = cursor.Column
	return s
}

// List is an ordered, non-overlapping sequence of selections, one of which
// is distinguished as the "main" selection (the one most operations report
// through or anchor further interactive motion on).
type List struct {
	Selections []Selection
	Main       int
}

// NewList builds a List from the given selections with the last one as
// main, matching Kakoune's convention that new selections become the focus.
func NewList(sels ...Selection) List {
	main := len(sels) - 1
	if main < 0 {
		main = 0
	}
	return List{Selections: sels, Main: main}
}

// MainSelection returns the list's main selection.
func (l List) MainSelection() Selection {
	return l.Selections[l.Main]
}

// Map returns a new List with f applied to every selection, main index
// preserved.
func (l List) Map(f func(Selection) Selection) List {
	out := make([]Selection, len(l.Selections))
	for i, s := range l.Selections {
		out[i] = f(s)
	}
	return List{Selections: out, Main: l.Main}
}

// Len returns the number of selections in the list.
func (l List) Len() int {
	return len(l.Selections)
}
