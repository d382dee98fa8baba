// Package ui provides a Bubble Tea-based TUI for strum.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strum-tui/strum/internal/mpd"
	"github.com/strum-tui/strum/internal/prefs"
	"github.com/strum-tui/strum/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewQueue View = iota
	ViewSearch
	ViewPlaylists
)

// SearchMode selects which lookup the search view performs.
type SearchMode int

const (
	ModeSearch SearchMode = iota // partial, case-insensitive
	ModeFind                     // exact match
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *mpd.Client
	Store     *state.Store
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *mpd.Client
	store     *state.Store
	prefsPath string
	pollTick  time.Duration

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Queue state
	selectedRow int

	// Search state
	searchInput    textinput.Model
	searchMode     SearchMode
	searchResults  []mpd.Track
	searchSelected int
	searchRan      bool

	// Playlists state
	playlistSelected int

	// About state (stats shown on the help overlay)
	about       aboutInfo
	aboutLoaded bool

	// Transient operation error, cleared on the next successful op
	errorMsg string

	// Help overlay
	showHelp bool
}

type aboutInfo struct {
	Version string
	Stats   mpd.Stats
	Types   []string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "artist:Queen bohemian"
	input.CharLimit = 200

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		currentView: ViewQueue,
		searchInput: input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.clampSelection()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		m.clampSelection()
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.errorMsg = friendlyError(msg.err)
			return m, nil
		}
		m.errorMsg = ""
		// Pull fresh state right away instead of waiting for the poller.
		return m, refreshNowCmd(m.ctx, m.client, m.store)

	case searchResultMsg:
		if msg.err != nil {
			m.errorMsg = friendlyError(msg.err)
			return m, nil
		}
		m.errorMsg = ""
		m.searchResults = msg.tracks
		m.searchSelected = 0
		m.searchRan = true
		return m, nil

	case aboutMsg:
		if msg.err == nil {
			m.about = msg.info
			m.aboutLoaded = true
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the search input is focused, almost everything goes to it.
	if m.currentView == ViewSearch && m.searchInput.Focused() {
		return m.handleSearchInputKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		if !m.aboutLoaded {
			return m, fetchAboutCmd(m.ctx, m.client)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewQueue):
		m.currentView = ViewQueue
		return m, nil

	case key.Matches(msg, m.keys.ViewSearch):
		m.currentView = ViewSearch
		return m, nil

	case key.Matches(msg, m.keys.ViewPlaylists):
		m.currentView = ViewPlaylists
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleView()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewQueue
		return m, nil

	// Playback controls work from every view.
	case key.Matches(msg, m.keys.PlayPause):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.PlayPause(ctx) })
	case key.Matches(msg, m.keys.Stop):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Stop(ctx) })
	case key.Matches(msg, m.keys.Next):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Next(ctx) })
	case key.Matches(msg, m.keys.Previous):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Previous(ctx) })
	case key.Matches(msg, m.keys.VolumeUp):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.VolumeUp(ctx) })
	case key.Matches(msg, m.keys.VolumeDown):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.VolumeDown(ctx) })
	case key.Matches(msg, m.keys.Mute):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Mute(ctx) })
	case key.Matches(msg, m.keys.Rescan):
		return m, m.opCmd(func(ctx context.Context) error { return m.client.Rescan(ctx) })
	}

	// View-specific keys
	switch m.currentView {
	case ViewQueue:
		return m.handleQueueKey(msg)
	case ViewSearch:
		return m.handleSearchKey(msg)
	case ViewPlaylists:
		return m.handlePlaylistsKey(msg)
	}

	return m, nil
}

// cycleView moves focus forward through the views.
func (m *Model) cycleView() {
	switch m.currentView {
	case ViewQueue:
		m.currentView = ViewSearch
	case ViewSearch:
		m.currentView = ViewPlaylists
	case ViewPlaylists:
		m.currentView = ViewQueue
	}
}

// clampSelection keeps list cursors inside their data after updates.
func (m *Model) clampSelection() {
	if n := len(m.snapshot.Queue); m.selectedRow >= n {
		m.selectedRow = max(n-1, 0)
	}
	if n := len(m.snapshot.Playlists); m.playlistSelected >= n {
		m.playlistSelected = max(n-1, 0)
	}
	if n := len(m.searchResults); m.searchSelected >= n {
		m.searchSelected = max(n-1, 0)
	}
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	cmds = append(cmds, tickCmd(m.pollTick))
	return m, tea.Batch(cmds...)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())

	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewQueue:
		return m.renderQueue()
	case ViewSearch:
		return m.renderSearch()
	case ViewPlaylists:
		return m.renderPlaylists()
	default:
		return ""
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type opDoneMsg struct{ err error }

type searchResultMsg struct {
	tracks []mpd.Track
	err    error
}

type aboutMsg struct {
	info aboutInfo
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// opCmd runs a client operation off the UI goroutine.
func (m Model) opCmd(op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{err: op(ctx)}
	}
}

// refreshNowCmd re-reads daemon state after a successful operation so the UI
// does not lag a full poll interval behind its own actions.
func refreshNowCmd(ctx context.Context, client *mpd.Client, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		status, err := client.Status(ctx)
		if err != nil {
			store.Update(nil, nil, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		queue, err := client.Queue(ctx)
		if err != nil {
			store.Update(nil, nil, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		playlists, err := client.Playlists(ctx)
		if err != nil {
			store.Update(nil, nil, nil, err)
			return snapshotMsg(store.Snapshot())
		}
		store.Update(&status, queue, playlists, nil)
		return snapshotMsg(store.Snapshot())
	}
}

func fetchAboutCmd(ctx context.Context, client *mpd.Client) tea.Cmd {
	return func() tea.Msg {
		version, err := client.Version(ctx)
		if err != nil {
			return aboutMsg{err: err}
		}
		stats, err := client.Stats(ctx)
		if err != nil {
			return aboutMsg{err: err}
		}
		types, err := client.SearchTypes(ctx)
		if err != nil {
			return aboutMsg{err: err}
		}
		return aboutMsg{info: aboutInfo{Version: version, Stats: stats, Types: types}}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
