package selection_test

import (
	"testing"

	"github.com/modaltext/selectengine/buffer"
	"github.com/modaltext/selectengine/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSurroundingBraceInBrackets(t *testing.T) {
	buf := buffer.New("[salut { toi[] }]")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 10}, "{", "}", selection.ToBegin|selection.ToEnd, 0)
	require.True(t, ok)
	assert.Equal(t, "{ toi[] }", buf.String(rng.Begin, rng.End))
}

func TestFindSurroundingBracketsInner(t *testing.T) {
	buf := buffer.New("[salut { toi[] }]")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 10}, "[", "]", selection.ToBegin|selection.ToEnd|selection.Inner, 0)
	require.True(t, ok)
	begin := buffer.At(buf, rng.Begin).Next().Coord()
	end := buffer.At(buf, rng.End).Previous().Coord()
	assert.Equal(t, "salut { toi[] }", buf.String(begin, end))
}

func TestFindSurroundingCursorOnOpener(t *testing.T) {
	buf := buffer.New("[salut { toi[] }]")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 0}, "[", "]", selection.ToBegin|selection.ToEnd, 0)
	require.True(t, ok)
	assert.Equal(t, "[salut { toi[] }]", buf.String(rng.Begin, rng.End))
}

func TestFindSurroundingDegenerateInner(t *testing.T) {
	buf := buffer.New("[salut { toi[] }]")
	sel := selection.SelectSurrounding(buf, cur(0, 12), "[", "]", selection.ToBegin|selection.ToEnd|selection.Inner)
	assert.Equal(t, "]", buf.String(sel.Min(), sel.Max()))
}

func TestFindSurroundingEmptyPair(t *testing.T) {
	buf := buffer.New("[]")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 1}, "[", "]", selection.ToBegin|selection.ToEnd, 0)
	require.True(t, ok)
	assert.Equal(t, "[]", buf.String(rng.Begin, rng.End))
}

func TestFindSurroundingNoEnclosingPairFails(t *testing.T) {
	buf := buffer.New("[*][] hehe")
	_, ok := selection.FindSurrounding(buf, buffer.Coord{0, 6}, "[", "]", selection.ToBegin, 0)
	assert.False(t, ok)
}

func TestFindSurroundingMultiCharDelimiters(t *testing.T) {
	buf := buffer.New("begin tchou begin tchaa end end")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 6}, "begin", "end", selection.ToBegin|selection.ToEnd, 0)
	require.True(t, ok)
	assert.Equal(t, "begin tchou begin tchaa end end", buf.String(rng.Begin, rng.End))
}

func TestFindSurroundingQuotesAreNonNestable(t *testing.T) {
	buf := buffer.New(`say "hello" now`)
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 6}, `"`, `"`, selection.ToBegin|selection.ToEnd, 0)
	require.True(t, ok)
	assert.Equal(t, `"hello"`, buf.String(rng.Begin, rng.End))
}

func TestFindSurroundingToBeginOnlyStopsAtCursor(t *testing.T) {
	buf := buffer.New("(abcdef)")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 4}, "(", ")", selection.ToBegin, 0)
	require.True(t, ok)
	assert.Equal(t, "(abcd", buf.String(rng.Begin, rng.End))
}

func TestFindSurroundingToEndOnlyStopsAtCursor(t *testing.T) {
	buf := buffer.New("(abcdef)")
	rng, ok := selection.FindSurrounding(buf, buffer.Coord{0, 4}, "(", ")", selection.ToEnd, 0)
	require.True(t, ok)
	assert.Equal(t, "def)", buf.String(rng.Begin, rng.End))
}

func TestSelectSurroundingExpandsOutwardOnRepeat(t *testing.T) {
	buf := buffer.New("((inner))")
	sel := cur(0, 3) // inside "inner"
	first := selection.SelectSurrounding(buf, sel, "(", ")", selection.ToBegin|selection.ToEnd)
	assert.Equal(t, "(inner)", buf.String(first.Min(), first.Max()))
	second := selection.SelectSurrounding(buf, first, "(", ")", selection.ToBegin|selection.ToEnd)
	assert.Equal(t, "((inner))", buf.String(second.Min(), second.Max()))
}
