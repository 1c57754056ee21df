package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brunch-rush.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `seed = 42`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.Seed != 42 {
		t.Errorf("Seed = %d, want 42", s.Seed)
	}
	if s.DayLength() != 5*time.Minute {
		t.Errorf("DayLength = %v, want default 5m", s.DayLength())
	}
	if s.Color != "auto" {
		t.Errorf("Color = %q, want auto", s.Color)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "day_length_seconds = 120\nmute = true\ncolor = \"256\"\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.DayLength() != 2*time.Minute || !s.Mute || s.Color != "256" {
		t.Errorf("Settings = %+v", s)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", `spead = 1`},
		{"zero day length", `day_length_seconds = 0`},
		{"bad color mode", `color = "cga"`},
		{"malformed toml", `color = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load accepted a bad config")
			}
		})
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	s, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if s != Default() {
		t.Errorf("Settings = %+v, want defaults", s)
	}
}
