package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/strum-tui/strum/internal/mpd"
	"github.com/strum-tui/strum/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second

	// maxBackoff caps the retry delay while MPD is unreachable.
	maxBackoff = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while MPD is unreachable. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client mpd.StatusFetcher, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		log = slog.Default()
	}
	go func() {
		for {
			refresh(ctx, store, client, log)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles the base interval per consecutive failure, capped
// at maxBackoff. Zero failures means the base interval.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, client mpd.StatusFetcher, log *slog.Logger) {
	status, err := client.Status(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		log.Warn("status poll failed", "error", err)
		return
	}
	queue, err := client.Queue(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		log.Warn("queue poll failed", "error", err)
		return
	}
	playlists, err := client.Playlists(ctx)
	if err != nil {
		store.Update(nil, nil, nil, err)
		log.Warn("playlist poll failed", "error", err)
		return
	}
	store.Update(&status, queue, playlists, nil)
}
