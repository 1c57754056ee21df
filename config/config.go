// Package config loads optional user settings from a TOML file. Every
// field has a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/brunch-rush/constants"
)

// Settings are the user-tunable knobs. Anything gameplay-critical stays
// in constants; these only shape the session shell.
type Settings struct {
	// DayLengthSeconds overrides the day timer. Zero means the default.
	DayLengthSeconds int `toml:"day_length_seconds"`

	// Seed fixes the session randomness. Zero means time-derived.
	Seed int64 `toml:"seed"`

	// Mute disables sound synthesis entirely
	Mute bool `toml:"mute"`

	// Color selects the terminal color mode: "auto", "full", or "256"
	Color string `toml:"color"`
}

// Default returns the settings used when no file is present
func Default() Settings {
	return Settings{
		DayLengthSeconds: int(constants.DayDuration / time.Second),
		Color:            "auto",
	}
}

// DayLength returns the configured day timer as a duration
func (s Settings) DayLength() time.Duration {
	return time.Duration(s.DayLengthSeconds) * time.Second
}

// Load parses settings from the given file, filling unset fields with
// defaults. Unknown keys and invalid values are errors; a silently
// ignored typo in a config file is worse than a startup failure.
func Load(path string) (Settings, error) {
	s := Default()
	meta, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := s.validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// LoadOrDefault loads the file when it exists and falls back to
// defaults when it does not. Parse errors still surface.
func LoadOrDefault(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func (s Settings) validate() error {
	if s.DayLengthSeconds <= 0 {
		return fmt.Errorf("day_length_seconds must be positive, got %d", s.DayLengthSeconds)
	}
	switch s.Color {
	case "auto", "full", "256":
	default:
		return fmt.Errorf("color must be auto, full, or 256, got %q", s.Color)
	}
	return nil
}
