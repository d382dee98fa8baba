package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navigation",
			items: []helpItem{
				{"tab", "Cycle views"},
				{"1/2/3", "Queue/Search/Playlists"},
				{"esc", "Return to queue"},
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
			},
		},
		{
			title: "Playback",
			items: []helpItem{
				{"Space", "Play/pause"},
				{"s", "Stop"},
				{"n/b", "Next/previous track"},
				{"+/-", "Volume up/down"},
				{"m", "Mute"},
				{"u", "Rescan library"},
			},
		},
		{
			title: "Queue",
			items: []helpItem{
				{"enter", "Play selected"},
				{"d", "Remove from queue"},
				{"c", "Clear queue"},
			},
		},
		{
			title: "Search",
			items: []helpItem{
				{"/", "Edit query"},
				{"f", "Toggle search/find"},
				{"enter", "Add to queue"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	// Daemon facts, fetched lazily the first time help opens
	if m.aboutLoaded {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("MPD %s · %d artists · %d albums · %d songs",
			m.about.Version, m.about.Stats.Artists, m.about.Stats.Albums, m.about.Stats.Songs)))
		if len(m.about.Types) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.FaintText.Render("search types: " + strings.Join(m.about.Types, ", ")))
		}
	}

	content := b.String()

	modalWidth := 44

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	modalContent := modal.Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
