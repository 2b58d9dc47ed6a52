package buffer_test

import (
	"testing"

	"github.com/modaltext/selectengine/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSplitsLines(t *testing.T) {
	b := buffer.New("foo\nbar\nbaz")
	require.Equal(t, 3, b.LineCount())
	assert.Equal(t, "foo\n", b.Line(0))
	assert.Equal(t, "bar\n", b.Line(1))
	assert.Equal(t, "baz\n", b.Line(2))
}

func TestNewEmpty(t *testing.T) {
	b := buffer.New("")
	require.Equal(t, 1, b.LineCount())
	assert.Equal(t, "\n", b.Line(0))
}

func TestBackCoord(t *testing.T) {
	b := buffer.New("ab\ncd")
	assert.Equal(t, buffer.Coord{Line: 1, Column: 2}, b.BackCoord())
}

func TestString(t *testing.T) {
	b := buffer.New("hello\nworld")
	s := b.String(buffer.Coord{0, 1}, buffer.Coord{1, 2})
	assert.Equal(t, "ello\nwor", s)
}

func TestCoordOrdering(t *testing.T) {
	a := buffer.Coord{Line: 0, Column: 5}
	c := buffer.Coord{Line: 1, Column: 0}
	assert.True(t, a.Less(c))
	assert.Equal(t, a, buffer.Min(a, c))
	assert.Equal(t, c, buffer.Max(a, c))
}

func TestIteratorNextCrossesLines(t *testing.T) {
	b := buffer.New("ab\ncd")
	it := buffer.At(b, buffer.Coord{0, 1})
	assert.Equal(t, 'b', it.Rune())
	it = it.Next()
	assert.Equal(t, byte('\n'), b.ByteAt(it.Coord()))
	it = it.Next()
	assert.Equal(t, buffer.Coord{1, 0}, it.Coord())
	assert.Equal(t, 'c', it.Rune())
}

func TestIteratorPreviousCrossesLines(t *testing.T) {
	b := buffer.New("ab\ncd")
	it := buffer.At(b, buffer.Coord{1, 0})
	it = it.Previous()
	assert.Equal(t, buffer.Coord{0, 2}, it.Coord())
	assert.Equal(t, byte('\n'), b.ByteAt(it.Coord()))
}

func TestIteratorMultibyteRune(t *testing.T) {
	b := buffer.New("aéb")
	it := buffer.At(b, buffer.Coord{0, 1})
	assert.Equal(t, 'é', it.Rune())
	assert.Equal(t, 2, it.RuneLen())
	it = it.Next()
	assert.Equal(t, buffer.Coord{0, 3}, it.Coord())
	assert.Equal(t, 'b', it.Rune())
}

func TestIteratorEndSentinel(t *testing.T) {
	b := buffer.New("a")
	end := buffer.End(b)
	assert.True(t, end.AtEnd())
	// Next at the last newline reaches end.
	it := buffer.At(b, buffer.Coord{0, 1})
	it = it.Next()
	assert.True(t, it.AtEnd())
}
