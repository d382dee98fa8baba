package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/strum-tui/strum/internal/mpd"
	"github.com/strum-tui/strum/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

// fakeFetcher implements mpd.StatusFetcher with canned data.
type fakeFetcher struct {
	status    mpd.Status
	queue     []mpd.Track
	playlists []string
	err       error
}

func (f *fakeFetcher) Status(context.Context) (mpd.Status, error) {
	return f.status, f.err
}

func (f *fakeFetcher) Queue(context.Context) ([]mpd.Track, error) {
	return f.queue, f.err
}

func (f *fakeFetcher) Playlists(context.Context) ([]string, error) {
	return f.playlists, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRefresh_PopulatesStore(t *testing.T) {
	fetcher := &fakeFetcher{
		status:    mpd.Status{State: mpd.StatePlaying, Index: 2, Total: 5, Volume: 40},
		queue:     []mpd.Track{{File: "a.mp3"}, {File: "b.mp3"}},
		playlists: []string{"Jazz"},
	}
	store := &state.Store{}

	refresh(context.Background(), store, fetcher, discardLogger())

	snap := store.Snapshot()
	if !snap.HasStatus || snap.Status.Index != 2 {
		t.Fatalf("snapshot status = %#v, want fetched status", snap.Status)
	}
	if len(snap.Queue) != 2 || len(snap.Playlists) != 1 {
		t.Fatalf("queue/playlists = %d/%d, want 2/1", len(snap.Queue), len(snap.Playlists))
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestRefresh_RecordsFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	store := &state.Store{}

	refresh(context.Background(), store, fetcher, discardLogger())
	refresh(context.Background(), store, fetcher, discardLogger())

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want the fetch error")
	}
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatalf("IsOffline() = false after two failed refreshes")
	}
}
