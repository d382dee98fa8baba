package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handlePlaylistsKey processes keyboard input for the playlists view.
func (m Model) handlePlaylistsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snapshot.Playlists)

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.playlistSelected < count-1 {
			m.playlistSelected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.playlistSelected > 0 {
			m.playlistSelected--
		}
	case key.Matches(msg, m.keys.Top):
		m.playlistSelected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.playlistSelected = max(count-1, 0)

	case key.Matches(msg, m.keys.LoadPlaylist):
		if m.playlistSelected < 0 || m.playlistSelected >= count {
			return m, nil
		}
		name := m.snapshot.Playlists[m.playlistSelected]
		return m, m.opCmd(func(ctx context.Context) error { return m.client.LoadPlaylist(ctx, name) })
	}

	return m, nil
}

// renderPlaylists renders the stored playlists view.
func (m Model) renderPlaylists() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2

	playlists := m.snapshot.Playlists
	if len(playlists) == 0 {
		emptyMsg := styles.MutedText.Render("No stored playlists")
		return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	width := m.width - 2
	var lines []string
	for i, name := range playlists {
		if i >= contentHeight-2 {
			lines = append(lines, styles.FaintText.Render(fmt.Sprintf("… %d more", len(playlists)-i)))
			break
		}
		if i == m.playlistSelected {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(" "+name))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SurfaceAlt)).
				Foreground(lipgloss.Color(m.theme.Text)).
				Width(width).
				Render(" "+name))
		}
	}

	title := fmt.Sprintf("Playlists (%d)", len(playlists))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, contentHeight, true)
}
