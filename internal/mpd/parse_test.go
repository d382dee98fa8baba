package mpd

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func wireLine(fields ...string) string {
	return strings.Join(fields, Delimiter)
}

func TestParseTracks_RoundTrip(t *testing.T) {
	in := []Track{
		{Artist: "Queen", Album: "A Night at the Opera", Disc: "1", Track: "11", Title: "Bohemian Rhapsody", File: "queen/opera/11.flac"},
		{Artist: "Mogwai", Album: "Young Team", Disc: "", Track: "2", Title: "Like Herod", File: "mogwai/young_team/02.mp3"},
		{Artist: "", Album: "", Disc: "", Track: "", Title: "", File: "unknown.ogg"},
	}

	var lines []string
	for _, track := range in {
		lines = append(lines, wireLine(track.Artist, track.Album, track.Disc, track.Track, track.Title, track.File))
	}

	got, total, err := parseTracks(strings.Join(lines, "\n")+"\n", 0)
	if err != nil {
		t.Fatalf("parseTracks returned error: %v", err)
	}
	if total != len(in) {
		t.Fatalf("total = %d, want %d", total, len(in))
	}
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("parseTracks = %#v, want %#v", got, in)
	}
}

func TestParseTracks_TruncatesToMax(t *testing.T) {
	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, wireLine("a", "b", "", fmt.Sprintf("%d", i+1), "title", fmt.Sprintf("file-%d", i)))
	}
	out := strings.Join(lines, "\n")

	tests := []struct {
		name string
		max  int
		want int
	}{
		{"unlimited", 0, 5},
		{"below count", 3, 3},
		{"equal to count", 5, 5},
		{"above count", 9, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := parseTracks(out, tt.max)
			if err != nil {
				t.Fatalf("parseTracks returned error: %v", err)
			}
			if total != 5 {
				t.Fatalf("total = %d, want 5", total)
			}
			if len(got) != tt.want {
				t.Fatalf("len = %d, want %d", len(got), tt.want)
			}
			for i, track := range got {
				if want := fmt.Sprintf("file-%d", i); track.File != want {
					t.Fatalf("track %d file = %q, want %q (order not preserved)", i, track.File, want)
				}
			}
		})
	}
}

func TestParseTracks_MalformedLine(t *testing.T) {
	out := wireLine("a", "b", "c", "d", "e", "f") + "\nnot a wire line\n"
	_, _, err := parseTracks(out, 0)

	var malformed *MalformedOutputError
	if !errors.As(err, &malformed) {
		t.Fatalf("parseTracks error = %v, want *MalformedOutputError", err)
	}
	if malformed.Text != "not a wire line" {
		t.Fatalf("malformed text = %q, want the offending line", malformed.Text)
	}
}

func TestParseStatus_FullOutput(t *testing.T) {
	out := strings.Join([]string{
		wireLine("Queen", "A Night at the Opera", "1", "11", "Bohemian Rhapsody", "queen/opera/11.flac"),
		"[playing] #3/10   1:23/4:56 (45%)",
		"volume: 60%   repeat: off   random: on    single: off   consume: off",
	}, "\n")

	status, err := parseStatus(out)
	if err != nil {
		t.Fatalf("parseStatus returned error: %v", err)
	}

	if status.State != StatePlaying || !status.Playing() {
		t.Fatalf("state = %q, want playing", status.State)
	}
	if status.Index != 3 || status.Total != 10 || status.Elapsed != 45 {
		t.Fatalf("index/total/elapsed = %d/%d/%d, want 3/10/45", status.Index, status.Total, status.Elapsed)
	}
	if status.Volume != 60 {
		t.Fatalf("volume = %d, want 60", status.Volume)
	}
	if status.Track == nil || status.Track.Title != "Bohemian Rhapsody" {
		t.Fatalf("track = %#v, want current track parsed from the delimiter line", status.Track)
	}
}

func TestParseStatus_VolumeUnavailable(t *testing.T) {
	status, err := parseStatus("volume: n/a   repeat: off   random: off   single: off   consume: off")
	if err != nil {
		t.Fatalf("parseStatus returned error: %v", err)
	}
	if status.Volume != VolumeUnavailable {
		t.Fatalf("volume = %d, want VolumeUnavailable sentinel", status.Volume)
	}
}

func TestParseStatus_Defaults(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"empty output", ""},
		{"only unknown lines", "Updating DB (#1) ...\nwarning: something\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := parseStatus(tt.out)
			if err != nil {
				t.Fatalf("parseStatus returned error: %v", err)
			}
			if status.State != StateStopped {
				t.Fatalf("state = %q, want stopped default", status.State)
			}
			if status.Playing() {
				t.Fatalf("Playing() = true, want false")
			}
			if status.Index != 0 || status.Total != 0 || status.Elapsed != 0 || status.Volume != 0 {
				t.Fatalf("numeric fields = %d/%d/%d/%d, want zeros", status.Index, status.Total, status.Elapsed, status.Volume)
			}
			if status.Track != nil {
				t.Fatalf("track = %#v, want nil", status.Track)
			}
		})
	}
}

func TestParseStatus_PausedMode(t *testing.T) {
	status, err := parseStatus("[paused]  #1/2   0:01/3:17 (0%)")
	if err != nil {
		t.Fatalf("parseStatus returned error: %v", err)
	}
	if status.State != StatePaused {
		t.Fatalf("state = %q, want paused", status.State)
	}
	if status.Playing() {
		t.Fatalf("Playing() = true for paused state")
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"blank input", "", nil},
		{"only newlines", "\n\n", nil},
		{"plain list", "A\nB\nC", []string{"A", "B", "C"}},
		{"duplicates collapse in first-seen order", "A\nB\nA\nC", []string{"A", "B", "C"}},
		{"trailing newline", "Jazz\nRock\n", []string{"Jazz", "Rock"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseNames(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parseNames(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseStats(t *testing.T) {
	out := strings.Join([]string{
		"Artists:    642",
		"Albums:    1042",
		"Songs:    12862",
		"",
		"Play Time:    5 days, 4:23:17",
		"Uptime:       0:01:44",
		"no colon here",
	}, "\n")

	got := parseStats(out)
	want := Stats{Artists: 642, Albums: 1042, Songs: 12862}
	if got != want {
		t.Fatalf("parseStats = %+v, want %+v", got, want)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"mpd version: 0.23.5\n", "0.23.5"},
		{"mpd version: 0.20.0", "0.20.0"},
		{"0.19", "0.19"},
	}

	for _, tt := range tests {
		if got := parseVersion(tt.in); got != tt.want {
			t.Fatalf("parseVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
