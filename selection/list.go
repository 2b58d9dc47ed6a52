package selection

import (
	"regexp"
	"sort"

	"github.com/modaltext/selectengine/buffer"
)

// Direction distinguishes a forward search (after the cursor) from a
// backward one (before the cursor), used by FindNextMatch.
type Direction int

const (
	// Forward searches toward the end of the buffer.
	Forward Direction = iota
	// Backward searches toward the start of the buffer.
	Backward
)

// SelectLines replaces every selection in l with the full lines it spans:
// each selection is extended so its anchor sits at column 0 of its first
// line and its cursor sits on the trailing newline of its last line.
func SelectLines(buf *buffer.Buffer, l List) List {
	return l.Map(func(s Selection) Selection {
		first, last := s.Min().Line, s.Max().Line
		anchor := buffer.Coord{Line: first, Column: 0}
		cursor := buffer.Coord{Line: last, Column: buf.LineLen(last) - 1}
		return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: EndOfLineColumn}
	})
}

// TrimPartialLines removes, from every selection, any partially-covered
// leading or trailing line: a selection whose start is mid-line has that
// line dropped from its front, and likewise at the back, so that only
// whole lines remain selected. A selection left with no whole line becomes
// a nil entry, dropped from the result.
func TrimPartialLines(buf *buffer.Buffer, l List) List {
	out := make([]Selection, 0, len(l.Selections))
	mainSel := l.MainSelection()
	for _, s := range l.Selections {
		begin, end := s.Min(), s.Max()
		if begin.Column != 0 {
			begin = buffer.Coord{Line: begin.Line + 1, Column: 0}
		}
		if end.Column != buf.LineLen(end.Line)-1 {
			if end.Line == begin.Line {
				continue
			}
			end = buffer.Coord{Line: end.Line - 1, Column: buf.LineLen(end.Line-1) - 1}
		}
		if end.Line < begin.Line {
			continue
		}
		out = append(out, Selection{Anchor: begin, Cursor: end, TargetColumn: EndOfLineColumn})
	}
	if len(out) == 0 {
		return List{}
	}
	main := 0
	for i, s := range out {
		if s.Min().LessEq(mainSel.Min()) && mainSel.Max().LessEq(s.Max()) {
			main = i
		}
	}
	return List{Selections: out, Main: main}
}

// SelectBuffer returns a single selection spanning the entire buffer.
func SelectBuffer(buf *buffer.Buffer) List {
	return NewList(Selection{
		Anchor:       buffer.Coord{0, 0},
		Cursor:       buf.BackCoord(),
		TargetColumn: EndOfLineColumn,
	})
}

// SelectAllMatches replaces every selection in l with one selection per
// non-overlapping match of re found within it. Returns ErrNoMatches if no
// selection in the list yields any match.
func SelectAllMatches(buf *buffer.Buffer, l List, re *regexp.Regexp) (List, error) {
	var out []Selection
	for _, s := range l.Selections {
		text := buf.String(s.Min(), s.Max())
		base := s.Min()
		locs := re.FindAllStringSubmatchIndex(text, -1)
		for _, loc := range locs {
			if loc[0] == loc[1] {
				continue
			}
			anchor := advanceCoord(buf, base, loc[0])
			cursor := advanceCoord(buf, base, loc[1]-1)
			out = append(out, Selection{
				Anchor:       anchor,
				Cursor:       cursor,
				TargetColumn: cursor.Column,
				Captures:     capturesFromLoc(buf, base, loc),
			})
		}
	}
	if len(out) == 0 {
		return List{}, ErrNoMatches(re.String())
	}
	return NewList(out...), nil
}

// SplitSelections replaces every selection in l with the spans between
// successive matches of re within it: re acts as a separator, the same way
// a string-split function works. Empty spans produced by adjacent
// separators are kept, each as a one-codepoint selection on the separator
// that follows it (a selection cannot be empty), matching this engine's
// "no-op absent, not an error"
// treatment of degenerate results -- only a total absence of any separator
// leaves the original selection unchanged.
func SplitSelections(buf *buffer.Buffer, l List, re *regexp.Regexp) (List, error) {
	var out []Selection
	for _, s := range l.Selections {
		base := s.Min()
		text := buf.String(s.Min(), s.Max())
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			out = append(out, s)
			continue
		}
		prev := 0
		for _, loc := range locs {
			out = append(out, spanSelection(buf, base, prev, loc[0]))
			prev = loc[1]
		}
		out = append(out, spanSelection(buf, base, prev, len(text)))
	}
	if len(out) == 0 {
		return List{}, ErrNothingSelected
	}
	return NewList(out...), nil
}

func spanSelection(buf *buffer.Buffer, base buffer.Coord, from, to int) Selection {
	if to <= from {
		to = from
	}
	anchor := advanceCoord(buf, base, from)
	end := to
	if end > from {
		end--
	}
	cursor := advanceCoord(buf, base, end)
	return Selection{Anchor: anchor, Cursor: cursor, TargetColumn: cursor.Column}
}

// advanceCoord walks forward n bytes from base, crossing line boundaries. A
// byte offset inside a multi-byte codepoint resolves to that codepoint.
func advanceCoord(buf *buffer.Buffer, base buffer.Coord, n int) buffer.Coord {
	it := buffer.At(buf, base)
	for consumed := 0; consumed+it.RuneLen() <= n; {
		consumed += it.RuneLen()
		it = it.Next()
	}
	return it.Coord()
}

func capturesFromLoc(buf *buffer.Buffer, base buffer.Coord, loc []int) []Range {
	caps := make([]Range, 0, len(loc)/2)
	for i := 0; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			caps = append(caps, Range{})
			continue
		}
		begin := advanceCoord(buf, base, loc[i])
		end := advanceCoord(buf, base, loc[i+1]-1)
		caps = append(caps, Range{Begin: begin, End: end})
	}
	return caps
}

// FindNextMatch searches for the next (or, with dir=Backward, previous)
// match of re relative to the main selection's cursor, optionally wrapping
// around the buffer's edge. It replaces the whole list with a single
// selection covering the match, recording its capture groups. If wrapped is
// non-nil, it is set to report whether the match was found by wrapping
// around the buffer's edge rather than in the direct search direction.
// Returns ErrNoMatches if re does not match anywhere reachable (considering
// wrap).
func FindNextMatch(buf *buffer.Buffer, l List, re *regexp.Regexp, dir Direction, wrap bool, wrapped *bool) (List, error) {
	if wrapped != nil {
		*wrapped = false
	}
	main := l.MainSelection()
	whole := buf.String(buffer.Coord{0, 0}, buf.BackCoord())
	cursorOffset := offsetOf(buf, main.Cursor)

	if dir == Forward {
		locs := re.FindAllStringSubmatchIndex(whole, -1)
		for _, loc := range locs {
			if loc[0] > cursorOffset {
				return matchToList(buf, loc), nil
			}
		}
		if wrap && len(locs) > 0 {
			if wrapped != nil {
				*wrapped = true
			}
			return matchToList(buf, locs[0]), nil
		}
		return List{}, ErrNoMatches(re.String())
	}

	locs := re.FindAllStringSubmatchIndex(whole, -1)
	for i := len(locs) - 1; i >= 0; i-- {
		if locs[i][0] < cursorOffset {
			return matchToList(buf, locs[i]), nil
		}
	}
	if wrap && len(locs) > 0 {
		if wrapped != nil {
			*wrapped = true
		}
		return matchToList(buf, locs[len(locs)-1]), nil
	}
	return List{}, ErrNoMatches(re.String())
}

func offsetOf(buf *buffer.Buffer, c buffer.Coord) int {
	offset := 0
	for l := 0; l < c.Line; l++ {
		offset += buf.LineLen(l)
	}
	return offset + c.Column
}

func matchToList(buf *buffer.Buffer, loc []int) List {
	base := buffer.Coord{0, 0}
	anchor := advanceCoord(buf, base, loc[0])
	cursor := advanceCoord(buf, base, loc[1]-1)
	return NewList(Selection{
		Anchor:       anchor,
		Cursor:       cursor,
		TargetColumn: cursor.Column,
		Captures:     capturesFromLoc(buf, base, loc),
	})
}

// SortedCopy returns a new List with selections sorted by position, main
// index remapped to follow the same logical selection.
func SortedCopy(l List) List {
	type indexed struct {
		sel Selection
		idx int
	}
	tmp := make([]indexed, len(l.Selections))
	for i, s := range l.Selections {
		tmp[i] = indexed{sel: s, idx: i}
	}
	sort.Slice(tmp, func(i, j int) bool { return tmp[i].sel.Min().Less(tmp[j].sel.Min()) })

	out := make([]Selection, len(tmp))
	main := 0
	for i, t := range tmp {
		out[i] = t.sel
		if t.idx == l.Main {
			main = i
		}
	}
	return List{Selections: out, Main: main}
}
