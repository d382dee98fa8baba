package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/strum-tui/strum/internal/mpd"
)

// Config captures everything strum needs to talk to MPD through mpc.
type Config struct {
	Binary      string // mpc executable, path or name on PATH
	Host        string // daemon host
	Port        string // daemon port
	MaxResults  int    // track-list cap, 0 = unlimited
	PollSeconds int    // refresh cadence in seconds, 0 = built-in default
}

const (
	defaultConfigPath = "~/.config/strum/config.toml"

	// Environment variables, matching the names mpc itself honors.
	envBinary = "MPC"
	envHost   = "MPD_HOST"
	envPort   = "MPD_PORT"
)

// Load resolves configuration in three layers: built-in defaults, then the
// TOML config file, then the environment. The environment wins because it
// is how MPD tooling is conventionally pointed at a non-local daemon.
// A missing config file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{
		Binary: mpd.DefaultBinary,
		Host:   mpd.DefaultHost,
		Port:   mpd.DefaultPort,
	}

	if err := cfg.applyFile(path); err != nil {
		return Config{}, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// ClientOptions converts the configuration into mpd client options.
func (c Config) ClientOptions() mpd.Options {
	return mpd.Options{
		Binary:     c.Binary,
		Host:       c.Host,
		Port:       c.Port,
		MaxResults: c.MaxResults,
	}
}

func (c *Config) applyFile(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		MPC          string `toml:"mpc"`
		Host         string `toml:"host"`
		Port         int    `toml:"port"`
		MaxResults   int    `toml:"max_results"`
		PollInterval int    `toml:"poll_interval"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.MPC); v != "" {
		c.Binary = v
	}
	if v := strings.TrimSpace(raw.Host); v != "" {
		c.Host = v
	}
	if raw.Port > 0 {
		c.Port = strconv.Itoa(raw.Port)
	}
	if raw.MaxResults > 0 {
		c.MaxResults = raw.MaxResults
	}
	if raw.PollInterval > 0 {
		c.PollSeconds = raw.PollInterval
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(envBinary)); v != "" {
		c.Binary = v
	}
	if v := strings.TrimSpace(os.Getenv(envHost)); v != "" {
		c.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(envPort)); v != "" {
		c.Port = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
