// Package ui provides a terminal user interface for strum.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea with lipgloss styling. It follows the Elm
// architecture: a single Model, messages for every external event, and a pure
// View function. All MPD interaction runs off the UI goroutine through
// tea.Cmd closures that resolve to messages.
//
// # Package Structure
//
//   - app.go: Root model, message plumbing, key dispatch, and Run
//   - keys.go: Keyboard bindings (bubbles/key)
//   - header.go: Now-playing bar and command hints bar
//   - queue.go: Queue view with play/remove/clear actions and track list rendering
//   - search.go: Library search view (bubbles/textinput, search and find modes)
//   - playlists.go: Stored playlists view with load action
//   - help.go: Help overlay, including daemon stats fetched on first open
//   - theme.go: Theme definitions and lipgloss style construction
//   - style_helpers.go: Background-safe rendering helpers
//
// # Data Flow
//
// A background poller (internal/app) refreshes a state.Store. The UI reads
// snapshots from the store on a tick and after every successful operation,
// so the header and queue never lag more than one poll interval behind MPD.
// Operations themselves return opDoneMsg; failures surface as a one-line
// warning in the header rather than interrupting the session.
//
// # Views
//
//   - Queue: current play queue with the playing track marked
//   - Search: free-form queries with typed artist:/album:/title:/file: segments
//   - Playlists: stored playlists, loaded into the queue on enter
//
// # Theming
//
// Three built-in themes (Dracula, Nightfox, Slate) cycle with T. The chosen
// theme persists via internal/prefs.
package ui
