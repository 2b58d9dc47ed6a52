package config

import (
	"fmt"
	"strings"
)

// validateKeybindings validates the interactive.keybindings override map.
func (c *Config) validateKeybindings() error {
	for action, value := range c.Interactive.Keybindings {
		if err := validateKeybindingValue(fmt.Sprintf("interactive.keybindings.%s", action), value); err != nil {
			return err
		}
	}
	return nil
}

// validateKeybindingValue validates a keybinding value (string or array of strings)
func validateKeybindingValue(fieldPath string, value interface{}) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil // Empty is allowed
		}
		if err := parseKeyBinding(v); err != nil {
			return &ValidationError{
				Field:   fieldPath,
				Value:   v,
				Message: err.Error(),
			}
		}
	case []interface{}:
		for i, item := range v {
			itemStr, ok := item.(string)
			if !ok {
				return &ValidationError{
					Field:   fmt.Sprintf("%s[%d]", fieldPath, i),
					Value:   item,
					Message: "keybinding array items must be strings",
				}
			}
			if itemStr != "" {
				if err := parseKeyBinding(itemStr); err != nil {
					return &ValidationError{
						Field:   fmt.Sprintf("%s[%d]", fieldPath, i),
						Value:   itemStr,
						Message: err.Error(),
					}
				}
			}
		}
	default:
		return &ValidationError{
			Field:   fieldPath,
			Value:   value,
			Message: "keybinding must be a string or array of strings",
		}
	}
	return nil
}

// parseKeyBinding validates key binding strings.
// This simple validation is implemented here to avoid a circular import:
// importing the full keybinding parser from 'internal/keybindings' would
// cause a circular dependency, since that package depends on 'config'.
func parseKeyBinding(keyStr string) error { //nolint:revive // parsing multiple legacy formats
	s := strings.TrimSpace(keyStr)
	if s == "" {
		return fmt.Errorf("empty key binding")
	}

	sLower := strings.ToLower(s)

	// Accept ctrl+<key>, ^<key>, c-<key>, alt+<key>, or arrow-key names.
	switch {
	case strings.HasPrefix(sLower, "ctrl+") && len(s) >= 6:
		return nil
	case strings.HasPrefix(s, "^") && len(s) == 2:
		return nil
	case strings.HasPrefix(sLower, "c-") && len(s) == 3:
		return nil
	case strings.HasPrefix(sLower, "alt+") && len(s) > 4:
		return nil
	case strings.HasPrefix(sLower, "meta+") && len(s) > 5:
		return nil
	case sLower == "up" || sLower == "down" || sLower == "left" || sLower == "right":
		return nil
	}

	return fmt.Errorf("unsupported key binding format: %s (supported: 'ctrl+<key>', '^<key>', 'c-<key>', 'alt+<key>', arrow names)", keyStr)
}
