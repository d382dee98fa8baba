package ui

import (
	"testing"

	"github.com/strum-tui/strum/internal/mpd"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 3 {
		t.Fatalf("ThemeNames() returned %d names, want 3", len(names))
	}
	if names[0] != "Dracula" || names[1] != "Nightfox" || names[2] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Dracula Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Dracula"); got != "Nightfox" {
		t.Fatalf("NextTheme(Dracula) = %q, want Nightfox", got)
	}
	if got := NextTheme("Slate"); got != "Dracula" {
		t.Fatalf("NextTheme(Slate) = %q, want Dracula (wraps)", got)
	}
	if got := NextTheme("Unknown"); got != "Dracula" {
		t.Fatalf("NextTheme(Unknown) = %q, want Dracula", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}

	unknown := GetTheme("Unknown")
	if unknown.Name != "Dracula" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Dracula (fallback)", unknown.Name)
	}
}

func TestEveryThemeCoversAllPlayStates(t *testing.T) {
	states := []mpd.PlayState{mpd.StatePlaying, mpd.StatePaused, mpd.StateStopped}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, state := range states {
			if th.StateColors[state] == "" {
				t.Fatalf("theme %q has no color for state %q", name, state)
			}
		}
	}
}
