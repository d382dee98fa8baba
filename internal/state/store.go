package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/strum-tui/strum/internal/mpd"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Status              mpd.Status
	HasStatus           bool
	Queue               []mpd.Track
	Playlists           []string
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when MPD has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility.
func (s *Store) Update(status *mpd.Status, queue []mpd.Track, playlists []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Queue = cloneTracks(queue)
	s.snapshot.Playlists = cloneStrings(playlists)
	if status != nil {
		s.snapshot.Status = *status
		s.snapshot.HasStatus = true
	} else {
		s.snapshot.HasStatus = false
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Queue = cloneTracks(s.snapshot.Queue)
	snap.Playlists = cloneStrings(s.snapshot.Playlists)
	if s.snapshot.Status.Track != nil {
		track := *s.snapshot.Status.Track
		snap.Status.Track = &track
	}
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneTracks(tracks []mpd.Track) []mpd.Track {
	if len(tracks) == 0 {
		return nil
	}
	dup := make([]mpd.Track, len(tracks))
	copy(dup, tracks)
	return dup
}

func cloneStrings(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	dup := make([]string, len(names))
	copy(dup, names)
	return dup
}
