// Package state provides thread-safe state management for strum.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing MPD
// status, queue, and playlist data between the background poller and the UI.
// It acts as the coordination point where polling updates meet rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Poller):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ client.Status()│            │                 │
//	│ client.Queue() │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  render UI      │
//	└────────────────┘            └─────────────────┘
//
// The Store mediates between these independent goroutines, ensuring atomic
// updates, no data races, and immutable snapshots via defensive copying.
//
// # Update Semantics
//
// Update has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(&status, queue, playlists, nil)
//	→ snapshot.Status = status
//	→ snapshot.Queue = queue
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(nil, nil, nil, err)
//	→ snapshot.Status/Queue/Playlists = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This ensures the UI always has the most recent successful data to display
// while also being informed of polling failures. IsOffline reports true once
// two or more polls in a row have failed, which is how the UI distinguishes
// "MPD is down" from a transient hiccup.
//
// # Defensive Copying
//
// Both Update and Snapshot perform deep copies: track and playlist slices are
// cloned, the current-track pointer is copied, and the error value is
// wrapped. The cost is negligible at strum's scale and much simpler than
// alternative coordination strategies.
//
// # Testing Considerations
//
// The Store is safe to construct with its zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// Snapshot() returns a zero Snapshot if never updated.
package state
