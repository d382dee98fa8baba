package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strum-tui/strum/internal/mpd"
)

// handleQueueKey processes keyboard input for the queue view.
func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Queue)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(count-1, 0)

	case key.Matches(msg, m.keys.PlaySelected):
		if count == 0 {
			return m, nil
		}
		pos := m.selectedRow + 1 // queue positions are 1-based
		return m, m.opCmd(func(ctx context.Context) error { return m.client.PlayPosition(ctx, pos) })

	case key.Matches(msg, m.keys.Remove):
		track := m.selectedQueueTrack()
		if track == nil {
			return m, nil
		}
		file := track.File
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Remove(ctx, file) })

	case key.Matches(msg, m.keys.Clear):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Clear(ctx) })
	}

	return m, nil
}

// selectedQueueTrack returns the queue track under the cursor, or nil.
func (m Model) selectedQueueTrack() *mpd.Track {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snapshot.Queue) {
		return nil
	}
	return &m.snapshot.Queue[m.selectedRow]
}

// renderQueue renders the queue view.
func (m Model) renderQueue() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2 // Account for header + cmdbar

	if len(m.snapshot.Queue) == 0 {
		emptyMsg := styles.MutedText.Render("Queue is empty · press 2 to search the library")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	title := fmt.Sprintf("Queue (%d)", len(m.snapshot.Queue))
	content := m.renderTrackList(m.snapshot.Queue, m.selectedRow, m.currentTrackIndex(), m.width-2, contentHeight-2)
	return m.renderTitledBox(title, content, m.width, contentHeight, true)
}

// currentTrackIndex returns the 0-based queue index of the playing track, or -1.
func (m Model) currentTrackIndex() int {
	status := m.snapshot.Status
	if !m.snapshot.HasStatus || status.State == mpd.StateStopped || status.Index <= 0 {
		return -1
	}
	return status.Index - 1
}

// renderTrackList renders tracks as styled rows with a selection cursor.
// The window scrolls to keep the selection visible.
func (m Model) renderTrackList(tracks []mpd.Track, selected, nowPlaying, width, height int) string {
	if len(tracks) == 0 || height <= 0 {
		return ""
	}

	// Scroll window
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := min(start+height, len(tracks))

	styles := m.theme.Styles()

	var lines []string
	for i := start; i < end; i++ {
		content := m.formatTrackRow(tracks[i], i, nowPlaying, width, i == selected)
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SurfaceAlt)).
				Width(width).
				Render(content))
		}
	}

	// Scroll indicator when the list continues past the window
	if end < len(tracks) && len(lines) > 0 {
		more := styles.FaintText.Render(fmt.Sprintf("… %d more", len(tracks)-end))
		lines[len(lines)-1] = lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SurfaceAlt)).
			Width(width).
			Render(more)
	}

	return strings.Join(lines, "\n")
}

// formatTrackRow formats one track row: "  3 ▶ Artist - Title · Album".
func (m Model) formatTrackRow(track mpd.Track, index, nowPlaying, width int, selected bool) string {
	bgColor := m.theme.SurfaceAlt
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	var numStyle, titleStyle, albumStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		numStyle, titleStyle, albumStyle = selText, selText, selText
	} else {
		styles := m.theme.Styles()
		numStyle = styles.MutedText
		titleStyle = styles.Text
		albumStyle = styles.FaintText
	}

	marker := " "
	if index == nowPlaying {
		marker = "▶"
		if !selected {
			titleStyle = m.theme.Styles().StateStyle(m.snapshot.Status.State)
		}
	}

	num := fmt.Sprintf("%3d", index+1)
	title := track.String()
	album := track.Album

	// Fit title and album into the row
	maxTitle := max(width-len(num)-len(album)-8, 16)
	title = truncate(title, maxTitle)

	row := bg.Render(num, numStyle) + bg.Space() +
		bg.Render(marker, titleStyle) + bg.Space() +
		bg.Render(title, titleStyle)
	if album != "" {
		row += bg.Render(" · ", albumStyle) + bg.Render(truncate(album, 30), albumStyle)
	}
	return row
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.SurfaceAlt
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := width - 2
	titleLen := len(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}
