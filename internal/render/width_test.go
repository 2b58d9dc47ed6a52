package render

import "testing"

func TestRuneWidthASCII(t *testing.T) {
	if RuneWidth('a') != 1 {
		t.Errorf("expected width 1 for ascii rune")
	}
}

func TestRuneWidthWideCJK(t *testing.T) {
	if RuneWidth('日') != 2 {
		t.Errorf("expected width 2 for wide CJK rune")
	}
}

func TestStringWidthMixed(t *testing.T) {
	if got := StringWidth("a日"); got != 3 {
		t.Errorf("expected width 3, got %d", got)
	}
}

func TestGraphemeStartSkipsCombiningMarks(t *testing.T) {
	runes := []rune("éx") // e + combining acute + x
	start := GraphemeStart(runes, 1)
	if start != 0 {
		t.Errorf("expected grapheme start 0, got %d", start)
	}
}

func TestColsBetween(t *testing.T) {
	runes := []rune("ab日c")
	if got := ColsBetween(runes, 0, len(runes)); got != 5 {
		t.Errorf("expected 5 columns, got %d", got)
	}
}
