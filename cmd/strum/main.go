package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/strum-tui/strum/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// MPD_HOST and MPD_PORT may live in a .env next to the working directory.
	_ = godotenv.Load()

	configPath := flag.String("config", "", "override config path (optional)")
	logPath := flag.String("log", "", "write debug logs to this file (optional)")
	pollSeconds := flag.Int("poll", 0, "refresh interval in seconds (optional, defaults to 2s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		LogPath:    *logPath,
	}
	if poll := *pollSeconds; poll > 0 {
		opts.PollEvery = poll
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "strum: %v\n", err)
		return 1
	}
	return 0
}
