// Package keybindings resolves the single flat keymap selectctl dispatches
// keystrokes against: built-in defaults overridden by the user's config file.
package keybindings

import (
	"fmt"

	"github.com/modaltext/selectengine/internal/config"
)

// KeyBindingResolver merges built-in defaults with a user's config overrides.
type KeyBindingResolver struct {
	userConfig *config.Config
	resolved   *KeyBindingMap
}

// NewKeyBindingResolver creates a resolver for the given user configuration.
func NewKeyBindingResolver(userConfig *config.Config) *KeyBindingResolver {
	return &KeyBindingResolver{userConfig: userConfig}
}

// Resolve returns the effective keymap: built-in defaults with any
// interactive.keybindings overrides from the user's config applied on top.
func (r *KeyBindingResolver) Resolve() (*KeyBindingMap, error) {
	if r.resolved != nil {
		return r.resolved, nil
	}

	result := DefaultKeyBindingMap()
	if r.userConfig != nil {
		if err := r.applyUserConfig(result); err != nil {
			return nil, err
		}
	}

	r.resolved = result
	return result, nil
}

// ClearCache drops the cached resolution, forcing the next Resolve to
// re-read the user config, for a caller that reloads the config file.
func (r *KeyBindingResolver) ClearCache() {
	r.resolved = nil
}

func (r *KeyBindingResolver) applyUserConfig(km *KeyBindingMap) error {
	for action, raw := range r.userConfig.Interactive.Keybindings {
		strokes, err := ParseKeyStrokes(raw)
		if err != nil {
			return fmt.Errorf("interactive.keybindings.%s: %w", action, err)
		}
		if err := setAction(km, action, strokes); err != nil {
			return err
		}
	}
	return nil
}

func setAction(km *KeyBindingMap, action string, strokes []KeyStroke) error {
	switch action {
	case "select_word":
		km.SelectWord = strokes
	case "select_unicode_word":
		km.SelectUnicodeWord = strokes
	case "select_line":
		km.SelectLine = strokes
	case "select_paragraph":
		km.SelectParagraph = strokes
	case "select_sentence":
		km.SelectSentence = strokes
	case "select_whitespaces":
		km.SelectWhitespaces = strokes
	case "select_indent_block":
		km.SelectIndentBlock = strokes
	case "select_matching":
		km.SelectMatching = strokes
	case "select_surrounding":
		km.SelectSurrounding = strokes
	case "select_argument":
		km.SelectArgument = strokes
	case "select_number":
		km.SelectNumber = strokes
	case "select_buffer":
		km.SelectBuffer = strokes
	case "select_lines":
		km.SelectLines = strokes
	case "trim_partial_lines":
		km.TrimPartialLines = strokes
	case "move_right":
		km.MoveRight = strokes
	case "move_left":
		km.MoveLeft = strokes
	case "move_to_line_begin":
		km.MoveToLineBegin = strokes
	case "move_to_line_end":
		km.MoveToLineEnd = strokes
	case "search":
		km.Search = strokes
	case "soft_cancel":
		km.SoftCancel = strokes
	default:
		return fmt.Errorf("unknown keybinding action: %s", action)
	}
	return nil
}
