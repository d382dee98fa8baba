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

// handleSearchInputKey processes keys while the query input has focus.
func (m Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		return m, nil

	case "enter":
		query := strings.TrimSpace(m.searchInput.Value())
		m.searchInput.Blur()
		if query == "" {
			return m, nil
		}
		return m, m.searchCmd(query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleSearchKey processes keys for the search view when the input is blurred.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.searchResults)

	switch {
	case key.Matches(msg, m.keys.EditQuery):
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleMode):
		if m.searchMode == ModeSearch {
			m.searchMode = ModeFind
		} else {
			m.searchMode = ModeSearch
		}
		// Re-run the lookup in the new mode
		if query := strings.TrimSpace(m.searchInput.Value()); query != "" && m.searchRan {
			return m, m.searchCmd(query)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.searchSelected < count-1 {
			m.searchSelected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.searchSelected > 0 {
			m.searchSelected--
		}
	case key.Matches(msg, m.keys.Top):
		m.searchSelected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.searchSelected = max(count-1, 0)

	case key.Matches(msg, m.keys.AddResult):
		if m.searchSelected < 0 || m.searchSelected >= count {
			return m, nil
		}
		file := m.searchResults[m.searchSelected].File
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Add(ctx, file) })
	}

	return m, nil
}

// searchCmd runs the library lookup for the current mode.
func (m Model) searchCmd(query string) tea.Cmd {
	ctx := m.ctx
	client := m.client
	mode := m.searchMode
	return func() tea.Msg {
		var (
			tracks []mpd.Track
			err    error
		)
		if mode == ModeFind {
			tracks, err = client.Find(ctx, query)
		} else {
			tracks, err = client.Search(ctx, query)
		}
		return searchResultMsg{tracks: tracks, err: err}
	}
}

// renderSearch renders the search view: query input on top, results below.
func (m Model) renderSearch() string {
	styles := m.theme.Styles()
	contentHeight := m.height - 2

	inputLabel := styles.AccentText.Bold(true).Render(m.searchModeLabel() + ":")
	inputLine := inputLabel + " " + m.searchInput.View()

	var body string
	switch {
	case len(m.searchResults) > 0:
		body = m.renderTrackList(m.searchResults, m.searchSelected, -1, m.width-2, contentHeight-4)
	case m.searchRan:
		body = styles.MutedText.Render("No matches")
	case m.searchInput.Focused():
		body = styles.MutedText.Render("Type a query, then press enter")
	default:
		body = styles.MutedText.Render("Press / to enter a query · artist: album: title: file: prefixes supported")
	}

	title := m.searchModeLabel()
	if len(m.searchResults) > 0 {
		title = fmt.Sprintf("%s (%d)", title, len(m.searchResults))
	}

	content := inputLine + "\n" +
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border)).Render(strings.Repeat("─", max(m.width-4, 0))) + "\n" +
		body
	return m.renderTitledBox(title, content, m.width, contentHeight, m.searchInput.Focused())
}
