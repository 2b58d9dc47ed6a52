package keybindings

// KeyBindingMap holds the resolved key strokes for every dispatchable
// selection action. Unlike the layered profile/context/platform scheme this
// package grew up under, there is exactly one KeyBindingMap active at a
// time: no per-context or per-platform variants.
type KeyBindingMap struct {
	SelectWord        []KeyStroke // select_word: the word under the cursor
	SelectUnicodeWord []KeyStroke // select_unicode_word: UAX #29 word boundaries
	SelectLine        []KeyStroke // select_line: the current line
	SelectParagraph   []KeyStroke // select_paragraph
	SelectSentence    []KeyStroke // select_sentence
	SelectWhitespaces []KeyStroke // select_whitespaces: the blank run under the cursor
	SelectIndentBlock []KeyStroke // select_indent_block
	SelectMatching    []KeyStroke // select_matching: jump to the matching bracket
	SelectSurrounding []KeyStroke // select_surrounding: enclosing ( )
	SelectArgument    []KeyStroke // select_argument: enclosing call argument
	SelectNumber      []KeyStroke // select_number
	SelectBuffer      []KeyStroke // select_buffer: replace selections with the whole buffer
	SelectLines       []KeyStroke // select_lines: expand selections to whole lines
	TrimPartialLines  []KeyStroke // trim_partial_lines
	MoveRight         []KeyStroke // move_right: select_to_next_word
	MoveLeft          []KeyStroke // move_left: select_to_previous_word
	MoveToLineBegin   []KeyStroke // move_to_line_begin
	MoveToLineEnd     []KeyStroke // move_to_line_end
	Search            []KeyStroke // search: prompt for a regex and find_next_match
	SoftCancel        []KeyStroke // soft_cancel: quit the editor loop
}

// DefaultKeyBindingMap returns the built-in default bindings.
func DefaultKeyBindingMap() *KeyBindingMap {
	return &KeyBindingMap{
		SelectWord:        []KeyStroke{NewTabKeyStroke()},
		SelectUnicodeWord: []KeyStroke{NewAltKeyStroke('w', "")},
		SelectLine:        []KeyStroke{NewCtrlKeyStroke('t')},
		SelectParagraph:   []KeyStroke{NewCharKeyStroke('c')},
		SelectSentence:    []KeyStroke{NewCharKeyStroke('s')},
		SelectWhitespaces: []KeyStroke{NewCharKeyStroke('w')},
		SelectIndentBlock: []KeyStroke{NewCharKeyStroke('i')},
		SelectMatching:    []KeyStroke{NewCharKeyStroke('m')},
		SelectSurrounding: []KeyStroke{NewCtrlKeyStroke('d')},
		SelectArgument:    []KeyStroke{NewCharKeyStroke('a')},
		SelectNumber:      []KeyStroke{NewCharKeyStroke('n')},
		SelectBuffer:      []KeyStroke{NewCharKeyStroke('%')},
		SelectLines:       []KeyStroke{NewCharKeyStroke('x')},
		TrimPartialLines:  []KeyStroke{NewAltKeyStroke('x')},
		MoveRight:         []KeyStroke{NewRightArrowKeyStroke()},
		MoveLeft:          []KeyStroke{NewLeftArrowKeyStroke()},
		MoveToLineBegin:   []KeyStroke{NewCtrlKeyStroke('a')},
		MoveToLineEnd:     []KeyStroke{NewCtrlKeyStroke('e')},
		Search:            []KeyStroke{NewCharKeyStroke('/')},
		SoftCancel:        []KeyStroke{NewCtrlKeyStroke('g'), NewEscapeKeyStroke()},
	}
}

// actionMap lists every action this keymap dispatches, keyed by the string
// name used on the wire (config files, dispatch switches).
func (km *KeyBindingMap) actionMap() map[string][]KeyStroke {
	return map[string][]KeyStroke{
		"select_word":         km.SelectWord,
		"select_unicode_word": km.SelectUnicodeWord,
		"select_line":         km.SelectLine,
		"select_paragraph":    km.SelectParagraph,
		"select_sentence":     km.SelectSentence,
		"select_whitespaces":  km.SelectWhitespaces,
		"select_indent_block": km.SelectIndentBlock,
		"select_matching":     km.SelectMatching,
		"select_surrounding":  km.SelectSurrounding,
		"select_argument":     km.SelectArgument,
		"select_number":       km.SelectNumber,
		"select_buffer":       km.SelectBuffer,
		"select_lines":        km.SelectLines,
		"trim_partial_lines":  km.TrimPartialLines,
		"move_right":          km.MoveRight,
		"move_left":           km.MoveLeft,
		"move_to_line_begin":  km.MoveToLineBegin,
		"move_to_line_end":    km.MoveToLineEnd,
		"search":              km.Search,
		"soft_cancel":         km.SoftCancel,
	}
}

// MatchesKeyStroke reports whether any KeyStroke bound to action matches input.
func (km *KeyBindingMap) MatchesKeyStroke(action string, input KeyStroke) bool {
	keyStrokes, exists := km.actionMap()[action]
	if !exists {
		return false
	}
	for _, ks := range keyStrokes {
		if input.Equals(ks) {
			return true
		}
	}
	return false
}
