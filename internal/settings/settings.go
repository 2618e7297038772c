// Package settings persists user display preferences.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings holds the user-tunable display preferences.
type Settings struct {
	// WordWrapEnabled controls whether game text is wrapped.
	WordWrapEnabled bool `json:"word_wrap_enabled"`
	// WordWrapLength is the wrap column when wrapping is enabled.
	WordWrapLength int `json:"word_wrap_length"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{WordWrapEnabled: true, WordWrapLength: 100}
}

// Load reads settings from path. A missing or unreadable file falls back to
// defaults; settings are a convenience, never a startup failure.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Default()
	}
	return s
}

// Save writes settings as indented JSON, creating parent directories as
// needed.
//
// Postcondition: Returns nil on success or a non-nil error.
func (s Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}
