package selection_test

import (
	"testing"

	"github.com/modaltext/selectengine/buffer"
	"github.com/modaltext/selectengine/selection"
	"github.com/stretchr/testify/assert"
)

func cur(line, col int) selection.Selection {
	c := buffer.Coord{Line: line, Column: col}
	return selection.NewSelection(c, c)
}

func TestSelectWordWholeWord(t *testing.T) {
	buf := buffer.New("foo bar baz")
	sel := cur(0, 5) // inside "bar"
	got := selection.SelectWord(buf, sel, selection.Word, 0, nil)
	assert.Equal(t, buffer.Coord{0, 4}, got.Min())
	assert.Equal(t, buffer.Coord{0, 6}, got.Max())
}

func TestSelectToNextWordSkipsBlanks(t *testing.T) {
	buf := buffer.New("foo   bar")
	sel := cur(0, 0)
	got := selection.SelectToNextWord(buf, sel, selection.Word, nil)
	assert.Equal(t, buffer.Coord{0, 6}, got.Cursor)
}

func TestSelectToNextWordEnd(t *testing.T) {
	buf := buffer.New("foo bar")
	sel := cur(0, 0)
	got := selection.SelectToNextWordEnd(buf, sel, selection.Word, nil)
	assert.Equal(t, buffer.Coord{0, 2}, got.Cursor)
}

func TestSelectToPreviousWord(t *testing.T) {
	buf := buffer.New("foo bar baz")
	sel := cur(0, 8) // start of "baz"
	got := selection.SelectToPreviousWord(buf, sel, selection.Word, nil)
	assert.Equal(t, buffer.Coord{0, 4}, got.Cursor)
}

func TestIsWordAndPunctuationClassification(t *testing.T) {
	opts := selection.NewDefaultOptions()
	assert.True(t, selection.IsWord('a', selection.Word, opts))
	assert.True(t, selection.IsWord('_', selection.Word, opts))
	assert.False(t, selection.IsWord('.', selection.Word, opts))
	assert.True(t, selection.IsPunctuation('.', opts))
	assert.False(t, selection.IsPunctuation(' ', opts))
}

func TestSelectNumber(t *testing.T) {
	buf := buffer.New("x = -12.5 end")
	sel := cur(0, 6) // inside "12.5"
	got := selection.SelectNumber(buf, sel, 0)
	assert.Equal(t, "-12.5", buf.String(got.Min(), got.Max()))
}
