package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/strum-tui/strum/internal/mpd"
)

// renderHeader renders the now-playing status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasStatus {
		return m.renderConnectingHeader(styles, bg)
	}

	content := m.buildStatusContent(styles, bg)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(content)
}

// renderConnectingHeader shows the connecting/offline state.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.lastUpdated.IsZero() {
			last = m.lastUpdated.Format("15:04:05")
		}

		parts := []string{
			bg.Render("strum", styles.Logo),
			bg.Render("MPD "+classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render("strum", styles.Logo) + sep +
			bg.Render("Connecting to MPD...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the now-playing bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < 100
	sep := bg.Spaces(2)
	status := m.snapshot.Status

	var parts []string

	// Logo
	parts = append(parts, bg.Render("strum", styles.Logo))

	// Play-state badge
	parts = append(parts, bg.Render(stateBadge(status.State), styles.StateStyle(status.State)))

	// Current track
	if status.Track != nil {
		maxTitle := 60
		if compact {
			maxTitle = 30
		}
		parts = append(parts, bg.Render(truncate(status.Track.String(), maxTitle), styles.Text))
	} else {
		parts = append(parts, bg.Render("nothing playing", styles.MutedText))
	}

	// Queue position and progress
	if status.State != mpd.StateStopped && status.Total > 0 {
		parts = append(parts,
			bg.Render(fmt.Sprintf("#%d/%d", status.Index, status.Total), styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("(%d%%)", status.Elapsed), styles.InfoText),
		)
	}

	// Volume
	parts = append(parts,
		bg.Render("Vol:", styles.MutedText)+bg.Space()+
			bg.Render(formatVolume(status.Volume), styles.Text),
	)

	// Offline indicator once several polls in a row have failed
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText.Bold(true)))
	}

	// Timestamp with relative time
	if !compact {
		if timeStr := m.formatTimestamp(); timeStr != "" {
			parts = append(parts, bg.Render(timeStr, styles.FaintText))
		}
	}

	// Transient operation error
	if m.errorMsg != "" {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		parts = append(parts,
			bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.errorMsg, maxErr), styles.WarningText),
		)
	}

	return bg.Join(parts, sep)
}

// stateBadge returns the glyph shown for a play state.
func stateBadge(state mpd.PlayState) string {
	switch state {
	case mpd.StatePlaying:
		return "▶"
	case mpd.StatePaused:
		return "⏸"
	default:
		return "■"
	}
}

// formatVolume renders a volume value, handling the unavailable sentinel.
func formatVolume(volume int) string {
	if volume == mpd.VolumeUnavailable {
		return "n/a"
	}
	return fmt.Sprintf("%d%%", volume)
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	var connErr *mpd.ConnectionError
	if errors.As(err, &connErr) {
		return "OFFLINE"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "not found"):
		return "MPC NOT FOUND"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewSearch:
		commands = []cmd{
			{"/", "Edit query"},
			{"f", m.searchModeLabel()},
			{"enter", "Add"},
			{"j/k", "Navigate"},
			{"1", "Queue"},
			{"3", "Playlists"},
			{"?", "More"},
		}
	case ViewPlaylists:
		commands = []cmd{
			{"enter", "Load"},
			{"j/k", "Navigate"},
			{"1", "Queue"},
			{"2", "Search"},
			{"?", "More"},
		}
	default: // ViewQueue
		commands = []cmd{
			{"Space", "Play/pause"},
			{"enter", "Play"},
			{"d", "Remove"},
			{"c", "Clear"},
			{"n/b", "Next/Prev"},
			{"+/-", "Volume"},
			{"2", "Search"},
			{"3", "Playlists"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands))
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Add theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

func (m Model) searchModeLabel() string {
	if m.searchMode == ModeFind {
		return "Find (exact)"
	}
	return "Search"
}
