package selection_test

import (
	"regexp"
	"testing"

	"github.com/modaltext/selectengine/buffer"
	"github.com/modaltext/selectengine/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSelectionsOnComma(t *testing.T) {
	buf := buffer.New("a,b,,c")
	whole := selection.SelectBuffer(buf)
	re := regexp.MustCompile(",")
	got, err := selection.SplitSelections(buf, whole, re)
	require.NoError(t, err)
	require.Equal(t, 4, got.Len())
	var parts []string
	for _, s := range got.Selections {
		parts = append(parts, buf.String(s.Min(), s.Max()))
	}
	assert.Equal(t, []string{"a", "b", ",", "c\n"}, parts)
}

func TestSelectAllMatches(t *testing.T) {
	buf := buffer.New("foo bar foo")
	whole := selection.SelectBuffer(buf)
	re := regexp.MustCompile("foo")
	got, err := selection.SelectAllMatches(buf, whole, re)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())
}

func TestSelectAllMatchesNoMatchesError(t *testing.T) {
	buf := buffer.New("foo bar")
	whole := selection.SelectBuffer(buf)
	re := regexp.MustCompile("zzz")
	_, err := selection.SelectAllMatches(buf, whole, re)
	require.Error(t, err)
	assert.Equal(t, "'zzz': no matches found", err.Error())
}

func TestFindNextMatchWrapsAround(t *testing.T) {
	buf := buffer.New("abc\nabc")
	sel := selection.NewList(cur(1, 2)) // on last "c"
	re := regexp.MustCompile("abc")
	var wrapped bool
	got, err := selection.FindNextMatch(buf, sel, re, selection.Forward, true, &wrapped)
	require.NoError(t, err)
	assert.Equal(t, buffer.Coord{0, 0}, got.MainSelection().Min())
	assert.True(t, wrapped)
}

func TestFindNextMatchNoWrapLeavesWrappedFalse(t *testing.T) {
	buf := buffer.New("abc abc")
	sel := selection.NewList(cur(0, 0))
	re := regexp.MustCompile("abc")
	var wrapped bool
	got, err := selection.FindNextMatch(buf, sel, re, selection.Forward, true, &wrapped)
	require.NoError(t, err)
	assert.Equal(t, buffer.Coord{0, 4}, got.MainSelection().Min())
	assert.False(t, wrapped)
}

func TestSelectLinesAndTrimPartialLines(t *testing.T) {
	buf := buffer.New("one\ntwo\nthree\n")
	s := selection.NewList(selection.NewSelection(buffer.Coord{0, 1}, buffer.Coord{1, 1}))
	lines := selection.SelectLines(buf, s)
	assert.Equal(t, buffer.Coord{0, 0}, lines.MainSelection().Min())

	trimmed := selection.TrimPartialLines(buf, s)
	// original selection spans mid-line-0 to mid-line-1: nothing whole remains
	assert.Equal(t, 0, trimmed.Len())
}
