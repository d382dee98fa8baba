// Package app provides the orchestration layer for strum.
//
// # Overview
//
// This package wires together configuration, polling, state management, and
// the UI to create the complete strum TUI experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/strum/config.toml and the environment
//  2. Load user preferences (theme)
//  3. Create the mpc-backed MPD client
//  4. Create shared state.Store for UI and poller coordination
//  5. Launch background poller goroutine for continuous updates
//  6. Start the TUI and block until user exits or context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read config + env
//	       ├─────> prefs.Load()      Read theme preference
//	       ├─────> mpd.NewClient()   Create mpc wrapper
//	       ├─────> state.Store{}     Shared state container
//	       ├─────> StartPoller()     Launch background updates
//	       └─────> ui.Run()          Start TUI (blocks)
//
//	Background Poller Loop:
//	┌─────────────────────────────────────────┐
//	│ StartPoller() goroutine                 │
//	│  ├─> client.Status()                    │
//	│  ├─> client.Queue()                     │
//	│  ├─> client.Playlists()                 │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Polling Behavior
//
// The poller runs continuously at a configurable interval (default: 2
// seconds). While MPD is unreachable the interval doubles per consecutive
// failure, capped at 30 seconds, so a stopped daemon does not get hammered.
// A successful poll resets the cadence.
//
// # Logging
//
// Stdout belongs to the TUI. Debug logging (every mpc invocation with its
// argv, exit code, and elapsed time) goes to a file when -log is given, and
// is discarded otherwise.
package app
