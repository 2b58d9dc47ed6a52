package keybindings

import "testing"

func TestDefaultKeyBindingMapCoversSelectionActions(t *testing.T) {
	km := DefaultKeyBindingMap()
	cases := []struct {
		action  string
		strokes []KeyStroke
	}{
		{"select_word", km.SelectWord},
		{"select_line", km.SelectLine},
		{"select_paragraph", km.SelectParagraph},
		{"select_matching", km.SelectMatching},
		{"select_surrounding", km.SelectSurrounding},
		{"select_argument", km.SelectArgument},
		{"select_buffer", km.SelectBuffer},
		{"search", km.Search},
		{"soft_cancel", km.SoftCancel},
	}
	for _, c := range cases {
		if len(c.strokes) == 0 {
			t.Errorf("action %s has no default keystrokes", c.action)
			continue
		}
		if !km.MatchesKeyStroke(c.action, c.strokes[0]) {
			t.Errorf("MatchesKeyStroke(%s) did not match its own default stroke", c.action)
		}
	}
}

func TestMatchesKeyStrokeUnknownAction(t *testing.T) {
	km := DefaultKeyBindingMap()
	if km.MatchesKeyStroke("not_an_action", NewCtrlKeyStroke('w')) {
		t.Error("expected unknown action to never match")
	}
}

func TestMatchesKeyStrokeRejectsWrongStroke(t *testing.T) {
	km := DefaultKeyBindingMap()
	if km.MatchesKeyStroke("select_line", NewCharKeyStroke('z')) {
		t.Error("expected select_line to reject an unbound stroke")
	}
}
