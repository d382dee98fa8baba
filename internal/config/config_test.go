package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/strum-tui/strum/internal/mpd"
)

// The MPD environment variables leak in from the developer's shell; clear
// them so every test starts from the built-in defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(envBinary, "")
	t.Setenv(envHost, "")
	t.Setenv(envPort, "")
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Binary != mpd.DefaultBinary {
		t.Fatalf("Binary = %q, want %q", cfg.Binary, mpd.DefaultBinary)
	}
	if cfg.Host != mpd.DefaultHost {
		t.Fatalf("Host = %q, want %q", cfg.Host, mpd.DefaultHost)
	}
	if cfg.Port != mpd.DefaultPort {
		t.Fatalf("Port = %q, want %q", cfg.Port, mpd.DefaultPort)
	}
	if cfg.MaxResults != 0 {
		t.Fatalf("MaxResults = %d, want 0 (unlimited)", cfg.MaxResults)
	}
	if cfg.PollSeconds != 0 {
		t.Fatalf("PollSeconds = %d, want 0 (built-in default)", cfg.PollSeconds)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
mpc = "  /usr/local/bin/mpc  "
host = "  music.local  "
port = 6601
max_results = 500
poll_interval = 5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Binary != "/usr/local/bin/mpc" {
		t.Fatalf("Binary = %q, want trimmed path", cfg.Binary)
	}
	if cfg.Host != "music.local" {
		t.Fatalf("Host = %q, want %q", cfg.Host, "music.local")
	}
	if cfg.Port != "6601" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "6601")
	}
	if cfg.MaxResults != 500 {
		t.Fatalf("MaxResults = %d, want 500", cfg.MaxResults)
	}
	if cfg.PollSeconds != 5 {
		t.Fatalf("PollSeconds = %d, want 5", cfg.PollSeconds)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
mpc = "   "
host = ""
port = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Binary != mpd.DefaultBinary {
		t.Fatalf("Binary = %q, want %q", cfg.Binary, mpd.DefaultBinary)
	}
	if cfg.Host != mpd.DefaultHost {
		t.Fatalf("Host = %q, want %q", cfg.Host, mpd.DefaultHost)
	}
	if cfg.Port != mpd.DefaultPort {
		t.Fatalf("Port = %q, want %q", cfg.Port, mpd.DefaultPort)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(envBinary, "mpc-staging")
	t.Setenv(envHost, "stereo.lan")
	t.Setenv(envPort, "7700")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
host = "music.local"
port = 6601
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Binary != "mpc-staging" {
		t.Fatalf("Binary = %q, want env value", cfg.Binary)
	}
	if cfg.Host != "stereo.lan" {
		t.Fatalf("Host = %q, want env value over file value", cfg.Host)
	}
	if cfg.Port != "7700" {
		t.Fatalf("Port = %q, want env value over file value", cfg.Port)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`host = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestClientOptions_CarriesEveryField(t *testing.T) {
	cfg := Config{Binary: "mpc", Host: "h", Port: "1", MaxResults: 7}
	opts := cfg.ClientOptions()
	if opts.Binary != "mpc" || opts.Host != "h" || opts.Port != "1" || opts.MaxResults != 7 {
		t.Fatalf("ClientOptions = %+v, want all config fields carried over", opts)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
