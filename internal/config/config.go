// Package config provides the configuration schema for the selection engine's
// demo editor: UI preferences, editing settings, and keybinding overrides.
package config

import "regexp"

var configPathSegmentRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Config represents the complete configuration structure.
type Config struct {
	Meta struct {
		Version       string `yaml:"version"`
		ConfigVersion string `yaml:"config-version"`
	} `yaml:"meta"`

	Editing struct {
		ExtraWordChars string `yaml:"extra-word-chars"`
		Tabstop        int    `yaml:"tabstop"`
	} `yaml:"editing"`

	UI struct {
		Color bool `yaml:"color"`
	} `yaml:"ui"`

	// Interactive.Keybindings overrides selectctl's default keymap. Each
	// value is a single keystroke string (e.g. "ctrl+w", "alt+f") or an
	// array of them; actions left unset keep their built-in binding.
	Interactive struct {
		Keybindings map[string]interface{} `yaml:"keybindings,omitempty"`
	} `yaml:"interactive"`
}

// Manager handles configuration loading, saving, and in-memory access.
type Manager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new configuration manager seeded with defaults.
func NewConfigManager() *Manager {
	return &Manager{config: getDefaultConfig()}
}

// GetConfig returns the current configuration.
func (cm *Manager) GetConfig() *Config {
	return cm.config
}

// ConfigPath returns the path Load resolved (or will use on first Save).
func (cm *Manager) ConfigPath() string {
	return cm.configPath
}

// getDefaultConfig returns the default configuration values.
func getDefaultConfig() *Config {
	cfg := &Config{}

	cfg.Editing.ExtraWordChars = ""
	cfg.Editing.Tabstop = 8

	cfg.UI.Color = true

	cfg.Meta.Version = "dev"
	cfg.Meta.ConfigVersion = "1.0"

	return cfg
}
