package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/strum-tui/strum/internal/mpd"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"zero max", "hello", 0, ""},
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"tiny max", "hello", 2, "he"},
		{"ellipsis", "hello world", 8, "hello..."},
		{"multi-byte cut", "Björk - Jóga", 6, "Bjö..."},
		{"multi-byte fits", "Jóga", 4, "Jóga"},
		{"multi-byte tiny max", "Jóga", 2, "Jó"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := truncate(tc.in, tc.max)
			if got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
			if !utf8.ValidString(got) {
				t.Fatalf("truncate(%q, %d) = %q is not valid UTF-8", tc.in, tc.max, got)
			}
		})
	}
}

func TestFriendlyError(t *testing.T) {
	connErr := &mpd.ConnectionError{Host: "music.local", Port: "6601"}
	if got := friendlyError(connErr); !strings.Contains(got, "music.local:6601") {
		t.Fatalf("friendlyError(conn) = %q, want host:port mentioned", got)
	}

	typeErr := &mpd.InvalidTypeError{What: "shoesize", Valid: []string{"any", "artist"}}
	got := friendlyError(typeErr)
	if !strings.Contains(got, "shoesize") || !strings.Contains(got, "any/artist") {
		t.Fatalf("friendlyError(type) = %q, want what and valid list", got)
	}

	cmdErr := &mpd.CommandError{Command: "load", ExitCode: 1, Stderr: "No such playlist"}
	if got := friendlyError(cmdErr); got != "No such playlist" {
		t.Fatalf("friendlyError(cmd) = %q, want daemon message", got)
	}

	bare := &mpd.CommandError{Command: "load", ExitCode: 1}
	if got := friendlyError(bare); !strings.Contains(got, "load") || !strings.Contains(got, "1") {
		t.Fatalf("friendlyError(bare cmd) = %q, want command and exit code", got)
	}
}

func TestFormatVolume(t *testing.T) {
	if got := formatVolume(60); got != "60%" {
		t.Fatalf("formatVolume(60) = %q, want 60%%", got)
	}
	if got := formatVolume(mpd.VolumeUnavailable); got != "n/a" {
		t.Fatalf("formatVolume(sentinel) = %q, want n/a", got)
	}
}

func TestStateBadge(t *testing.T) {
	if stateBadge(mpd.StatePlaying) == stateBadge(mpd.StateStopped) {
		t.Fatal("playing and stopped should render different badges")
	}
	if stateBadge(mpd.StatePaused) == stateBadge(mpd.StatePlaying) {
		t.Fatal("paused and playing should render different badges")
	}
}
