package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding

	// View switching
	ViewQueue     key.Binding
	ViewSearch    key.Binding
	ViewPlaylists key.Binding

	// Playback
	PlayPause  key.Binding
	Stop       key.Binding
	Next       key.Binding
	Previous   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Mute       key.Binding
	Rescan     key.Binding

	// Queue actions
	PlaySelected key.Binding
	Remove       key.Binding
	Clear        key.Binding

	// Search actions
	EditQuery  key.Binding
	ToggleMode key.Binding
	AddResult  key.Binding

	// Playlist actions
	LoadPlaylist key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle views"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Return to queue"),
		),

		// View switching
		ViewQueue: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Queue view"),
		),
		ViewSearch: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Search view"),
		),
		ViewPlaylists: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Playlists view"),
		),

		// Playback
		PlayPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Play/pause"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Stop"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next track"),
		),
		Previous: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Previous track"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Volume down"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Mute"),
		),
		Rescan: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Rescan library"),
		),

		// Queue actions
		PlaySelected: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Play selected"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "Remove from queue"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear queue"),
		),

		// Search actions
		EditQuery: key.NewBinding(
			key.WithKeys("/", "i"),
			key.WithHelp("/", "Edit query"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Toggle search/find"),
		),
		AddResult: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Add to queue"),
		),

		// Playlist actions
		LoadPlaylist: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Load playlist"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ViewQueue, k.ViewSearch, k.ViewPlaylists},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.PlayPause, k.Stop, k.Next, k.Previous},
		{k.VolumeUp, k.VolumeDown, k.Mute},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
