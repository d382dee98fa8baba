package mpd

import (
	"regexp"
	"strconv"
	"strings"
)

// Delimiter joins the six track fields in the wire format requested from
// mpc: U+00A0 (no-break space), U+266A (eighth note), U+00A0. The sequence
// is vanishingly unlikely to occur inside real tag metadata.
const Delimiter = "\u00a0\u266a\u00a0"

// trackFormat is the mpc -f format string for the wire format.
const trackFormat = "%artist%" + Delimiter + "%album%" + Delimiter + "%disc%" +
	Delimiter + "%track%" + Delimiter + "%title%" + Delimiter + "%file%"

const trackFieldCount = 6

// playbackPattern matches mpc's human-readable playback line, e.g.
//
//	[playing] #3/10   1:23/4:56 (45%)
var playbackPattern = regexp.MustCompile(`^\[([a-z]+)\]\s+#(\d+)/(\d+)\s+.*\((\d+)%\)`)

// settingPattern matches one "key: value" pair on mpc's settings line, e.g.
// "volume: 60%   repeat: off   random: off".
var settingPattern = regexp.MustCompile(`(\w+):\s*(\S+)`)

// parseTracks decodes wire-format output into tracks, preserving line order.
// When max > 0 parsing stops after max lines; the discarded remainder is
// logged at debug level by the caller. A line that does not split into six
// fields is a MalformedOutputError.
func parseTracks(out string, max int) ([]Track, int, error) {
	lines := splitLines(out)

	var tracks []Track
	for _, line := range lines {
		fields := strings.Split(line, Delimiter)
		if len(fields) != trackFieldCount {
			return nil, 0, &MalformedOutputError{Text: line}
		}
		tracks = append(tracks, Track{
			Artist: fields[0],
			Album:  fields[1],
			Disc:   fields[2],
			Track:  fields[3],
			Title:  fields[4],
			File:   fields[5],
		})
		if max > 0 && len(tracks) >= max {
			break
		}
	}
	return tracks, len(lines), nil
}

// parseStatus builds a Status from mpc status output. The three line shapes
// (playback, settings, current track) are checked independently per line;
// anything else is ignored. Fields never observed keep their zero values and
// the state defaults to stopped, which is exactly what a stopped daemon's
// output implies.
func parseStatus(out string) (Status, error) {
	status := Status{State: StateStopped}

	for _, line := range splitLines(out) {
		if m := playbackPattern.FindStringSubmatch(line); m != nil {
			status.State = PlayState(m[1])
			status.Index = atoi(m[2])
			status.Total = atoi(m[3])
			status.Elapsed = atoi(m[4])
			continue
		}

		if strings.HasPrefix(line, "volume") {
			for _, kv := range settingPattern.FindAllStringSubmatch(line, -1) {
				if kv[1] != "volume" {
					continue
				}
				if kv[2] == "n/a" {
					status.Volume = VolumeUnavailable
				} else {
					status.Volume = atoi(strings.TrimSuffix(kv[2], "%"))
				}
			}
			continue
		}

		if strings.Contains(line, Delimiter) {
			tracks, _, err := parseTracks(line, 1)
			if err != nil {
				return Status{}, err
			}
			if len(tracks) > 0 {
				track := tracks[0]
				status.Track = &track
			}
		}
	}

	return status, nil
}

// parseNames decodes newline-separated plain names, collapsing duplicates
// while preserving first-seen order.
func parseNames(out string) []string {
	lines := splitLines(out)
	if len(lines) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(lines))
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		names = append(names, line)
	}
	return names
}

// parseStats extracts library counts from mpc stats output. Lines without a
// colon (and keys other than the three counts) are ignored.
func parseStats(out string) Stats {
	var stats Stats
	for _, line := range splitLines(out) {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		n := atoi(strings.TrimSpace(value))
		switch strings.TrimSpace(key) {
		case "Artists":
			stats.Artists = n
		case "Albums":
			stats.Albums = n
		case "Songs":
			stats.Songs = n
		}
	}
	return stats
}

// parseVersion extracts the protocol version from "mpd version: 0.23.5".
func parseVersion(out string) string {
	idx := strings.LastIndex(out, ":")
	if idx < 0 {
		return strings.TrimSpace(out)
	}
	return strings.TrimSpace(out[idx+1:])
}

// splitLines splits helper output into lines, dropping empty ones.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimRight(line, "\r") == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
