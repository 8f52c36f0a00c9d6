package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const BaseDirName = "TextMetrics"

type Settings struct {
	WordsPerMinute float64 `json:"words_per_minute"`
	SaveHistory    bool    `json:"save_history"`
}

func defaultSettings() Settings {
	return Settings{
		WordsPerMinute: 200,
		SaveHistory:    true,
	}
}

func EnsureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return EnsureAt(filepath.Join(home, BaseDirName))
}

// EnsureAt creates the workspace layout under base and writes default
// settings on first run. Existing settings are never overwritten.
func EnsureAt(base string) (string, error) {
	paths := []string{
		filepath.Join(base, "configs"),
		filepath.Join(base, "history"),
		filepath.Join(base, "exports"),
	}

	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			return "", fmt.Errorf("mkdir %s: %w", p, err)
		}
	}

	settingsPath := SettingsPath(base)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		raw, marshalErr := json.MarshalIndent(defaultSettings(), "", "  ")
		if marshalErr != nil {
			return "", fmt.Errorf("marshal settings: %w", marshalErr)
		}
		if writeErr := os.WriteFile(settingsPath, raw, 0o644); writeErr != nil {
			return "", fmt.Errorf("write settings: %w", writeErr)
		}
	}

	return base, nil
}

func SettingsPath(base string) string {
	return filepath.Join(base, "configs", "settings.json")
}

// HistoryDBPath returns the location of the analysis history database.
func HistoryDBPath(base string) string {
	return filepath.Join(base, "history", "analyses.db")
}

// LoadSettings reads settings.json, falling back to defaults for a missing
// file or any unset numeric field.
func LoadSettings(base string) (Settings, error) {
	s := defaultSettings()
	raw, err := os.ReadFile(SettingsPath(base))
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse settings: %w", err)
	}
	if s.WordsPerMinute <= 0 {
		s.WordsPerMinute = defaultSettings().WordsPerMinute
	}
	return s, nil
}
