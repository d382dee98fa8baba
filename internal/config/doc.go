// Package config handles loading strum's configuration.
//
// # Overview
//
// This package resolves how strum reaches MPD: which mpc binary to spawn,
// which host and port to pass it, how many tracks to keep from large
// listings, and how often to poll the daemon. Configuration is deliberately
// small; almost everyone runs with the defaults.
//
// # Resolution Order
//
// Load applies three layers, later layers winning:
//
//  1. Built-in defaults (mpc on PATH, localhost:6600, unlimited results)
//  2. The TOML config file
//  3. Environment variables (MPC, MPD_HOST, MPD_PORT)
//
// The environment wins because MPD_HOST and MPD_PORT are how MPD tooling is
// conventionally pointed at a non-local daemon; strum honors the same
// variables mpc itself reads.
//
// # Config File
//
// The default location is ~/.config/strum/config.toml. A missing file is not
// an error. Example:
//
//	mpc = "/usr/local/bin/mpc"
//	host = "music.local"
//	port = 6601
//	max_results = 500
//	poll_interval = 5
//
// All fields are optional. Empty or zero values fall back to the previous
// layer. Tilde expansion is performed on the config path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. os.ErrNotExist is swallowed so strum works
// out-of-the-box without a config file.
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//		log.Fatalf("failed to load config: %v", err)
//	}
//	client := mpd.NewClient(cfg.ClientOptions())
package config
