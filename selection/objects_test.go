package selection_test

import (
	"testing"

	"github.com/modaltext/selectengine/buffer"
	"github.com/modaltext/selectengine/selection"
	"github.com/stretchr/testify/assert"
)

func curAt(line, col int) selection.Selection {
	c := buffer.Coord{Line: line, Column: col}
	return selection.NewSelection(c, c)
}

func TestSelectParagraphAcrossBlankSeparatorOuter(t *testing.T) {
	buf := buffer.New("first para\nstill first\n\n\nsecond para\n")
	sel := curAt(1, 2) // inside "still first"
	got := selection.SelectParagraph(buf, sel, 0)
	assert.Equal(t, buffer.Coord{0, 0}, got.Min())
	// outer selection absorbs the trailing blank-line run
	assert.Equal(t, 3, got.Max().Line)
}

func TestSelectParagraphAcrossBlankSeparatorInner(t *testing.T) {
	buf := buffer.New("first para\nstill first\n\n\nsecond para\n")
	sel := curAt(1, 2)
	got := selection.SelectParagraph(buf, sel, selection.Inner)
	assert.Equal(t, buffer.Coord{0, 0}, got.Min())
	assert.Equal(t, 1, got.Max().Line)
}

func TestSelectParagraphCursorOnSeparatorSelectsBlankRun(t *testing.T) {
	buf := buffer.New("first para\n\n\nsecond para\n")
	sel := curAt(1, 0) // on the first blank line of the separator
	got := selection.SelectParagraph(buf, sel, 0)
	assert.Equal(t, 1, got.Min().Line)
	assert.Equal(t, 2, got.Max().Line)
}

func TestSelectSentenceExcludesTrailingBlanksWhenInner(t *testing.T) {
	buf := buffer.New("One sentence. Another one. Last.\n")
	sel := curAt(0, 4) // inside "sentence"
	got := selection.SelectSentence(buf, sel, selection.Inner)
	assert.Equal(t, "One sentence.", buf.String(got.Min(), got.Max()))
}

func TestSelectSentenceIncludesTrailingBlanksByDefault(t *testing.T) {
	buf := buffer.New("One sentence. Another one. Last.\n")
	sel := curAt(0, 4)
	got := selection.SelectSentence(buf, sel, 0)
	assert.Equal(t, "One sentence. ", buf.String(got.Min(), got.Max()))
}

func TestSelectWhitespacesOnBlankRun(t *testing.T) {
	buf := buffer.New("foo   bar\n")
	sel := curAt(0, 4)
	got := selection.SelectWhitespaces(buf, sel)
	assert.Equal(t, "   ", buf.String(got.Min(), got.Max()))
}

func TestSelectWhitespacesFailsOffWhitespace(t *testing.T) {
	buf := buffer.New("foo   bar\n")
	sel := curAt(0, 0)
	got := selection.SelectWhitespaces(buf, sel)
	assert.Equal(t, sel, got)
}

func TestSelectIndentBlockWithTabs(t *testing.T) {
	buf := buffer.New("func f() {\n\tif x {\n\t\treturn\n\t}\n}\n")
	sel := curAt(1, 2) // inside "if x {", indent one tab deep
	got := selection.SelectIndentBlock(buf, sel, selection.NewDefaultOptions())
	assert.Equal(t, 1, got.Min().Line)
	assert.Equal(t, 3, got.Max().Line)
}

func TestSelectArgumentMiddle(t *testing.T) {
	buf := buffer.New("call(a, b, c)\n")
	sel := curAt(0, 8) // inside "b"
	got := selection.SelectArgument(buf, sel, 0)
	assert.Equal(t, " b", buf.String(got.Min(), got.Max()))
}

func TestSelectArgumentInner(t *testing.T) {
	buf := buffer.New("call(a, b, c)\n")
	sel := curAt(0, 8)
	got := selection.SelectArgument(buf, sel, selection.Inner)
	assert.Equal(t, "b", buf.String(got.Min(), got.Max()))
}

func TestSelectArgumentLast(t *testing.T) {
	buf := buffer.New("call(a, b, c)\n")
	sel := curAt(0, 11) // inside "c"
	got := selection.SelectArgument(buf, sel, 0)
	assert.Equal(t, " c", buf.String(got.Min(), got.Max()))
}
