package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/strum-tui/strum/internal/config"
	"github.com/strum-tui/strum/internal/mpd"
	"github.com/strum-tui/strum/internal/prefs"
	"github.com/strum-tui/strum/internal/state"
	"github.com/strum-tui/strum/internal/ui"
)

// Options configure the strum application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/strum/prefs.toml
	LogPath    string // empty disables debug logging
	PollEvery  int    // seconds; zero uses default
}

// Run boots the strum TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	log, closeLog, err := newLogger(opts.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	clientOpts := cfg.ClientOptions()
	clientOpts.Logger = log
	client := mpd.NewClient(clientOpts)

	store := &state.Store{}

	// The -poll flag beats the config file, which beats the built-in default.
	interval := defaultPollInterval
	if cfg.PollSeconds > 0 {
		interval = time.Duration(cfg.PollSeconds) * time.Second
	}
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Start background poller
	StartPoller(ctx, store, client, interval, log)

	// Do initial refresh to populate store before UI starts
	refresh(ctx, store, client, log)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// newLogger builds the application logger. Stdout belongs to the TUI, so
// debug logs go to a file or nowhere.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { _ = file.Close() }, nil
}
