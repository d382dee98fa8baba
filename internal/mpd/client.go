package mpd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Defaults used when Options fields are left empty. Host and port match
// MPD's conventional local setup.
const (
	DefaultBinary = "mpc"
	DefaultHost   = "localhost"
	DefaultPort   = "6600"
)

// VolumeStep is the increment used by VolumeUp and VolumeDown.
const VolumeStep = 10

// StatusFetcher is the read-only subset of the client the poller depends on.
// Implemented by *Client.
type StatusFetcher interface {
	Status(ctx context.Context) (Status, error)
	Queue(ctx context.Context) ([]Track, error)
	Playlists(ctx context.Context) ([]string, error)
}

var _ StatusFetcher = (*Client)(nil)

// Options configure a Client. The zero value is usable and talks to a local
// daemon through an mpc found on PATH.
type Options struct {
	// Binary is the helper executable, a path or a name looked up on PATH.
	Binary string

	// Host and Port select the daemon; passed to every invocation as
	// --host/--port.
	Host string
	Port string

	// MaxResults caps the number of tracks decoded from any one track-list
	// response. Zero means unlimited. Truncation is silent apart from a
	// debug log.
	MaxResults int

	// Logger receives per-invocation debug logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client runs mpc once per operation and decodes its output. It holds no
// connection and no mutable state, so concurrent use is safe; overlapping
// calls are serialized by the daemon, not by this type.
type Client struct {
	binary     string
	host       string
	port       string
	maxResults int
	log        *slog.Logger
	runner     runner
}

// NewClient builds a Client from opts, filling in defaults for empty fields.
func NewClient(opts Options) *Client {
	c := &Client{
		binary:     opts.Binary,
		host:       opts.Host,
		port:       opts.Port,
		maxResults: opts.MaxResults,
		log:        opts.Logger,
		runner:     execRunner{},
	}
	if c.binary == "" {
		c.binary = DefaultBinary
	}
	if c.host == "" {
		c.host = DefaultHost
	}
	if c.port == "" {
		c.port = DefaultPort
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// invoke runs one helper command and returns its stdout. opts are mpc
// options placed before the command (e.g. -f FORMAT), args come after it.
// A non-zero exit is classified into one of the typed errors.
func (c *Client) invoke(ctx context.Context, command string, args, opts []string) (string, error) {
	argv := make([]string, 0, 5+len(opts)+len(args))
	argv = append(argv, "--host", c.host, "--port", c.port)
	argv = append(argv, opts...)
	argv = append(argv, command)
	argv = append(argv, args...)

	start := time.Now()
	res, err := c.runner.run(ctx, c.binary, argv)
	if err != nil {
		return "", fmt.Errorf("run %s: %w", c.binary, err)
	}
	c.log.Debug("mpc finished",
		"command", command,
		"argv", argv,
		"exit", res.exitCode,
		"elapsed", time.Since(start))

	if res.exitCode != 0 {
		return "", c.classifyError(command, args, res.exitCode, res.stderr)
	}
	return res.stdout, nil
}

// tracks runs a command with the wire-format option and decodes the output.
func (c *Client) tracks(ctx context.Context, command string, args []string) ([]Track, error) {
	out, err := c.invoke(ctx, command, args, []string{"-f", trackFormat})
	if err != nil {
		return nil, err
	}
	parsed, total, err := parseTracks(out, c.maxResults)
	if err != nil {
		return nil, err
	}
	if len(parsed) < total {
		c.log.Debug("truncated results", "kept", len(parsed), "received", total)
	}
	return parsed, nil
}

// Version returns the daemon's protocol version.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.invoke(ctx, "version", nil, nil)
	if err != nil {
		return "", err
	}
	return parseVersion(out), nil
}

// Artists lists every artist in the library.
func (c *Client) Artists(ctx context.Context) ([]string, error) {
	return c.names(ctx, "list", "artist")
}

// SearchArtists lists artists whose name matches query.
func (c *Client) SearchArtists(ctx context.Context, query string) ([]string, error) {
	return c.names(ctx, "list", "artist", "artist", query)
}

// Albums lists every album in the library.
func (c *Client) Albums(ctx context.Context) ([]string, error) {
	return c.names(ctx, "list", "album")
}

// SearchAlbums lists albums whose name matches query.
func (c *Client) SearchAlbums(ctx context.Context, query string) ([]string, error) {
	return c.names(ctx, "list", "album", "album", query)
}

// Playlists lists the daemon's saved playlists.
func (c *Client) Playlists(ctx context.Context) ([]string, error) {
	return c.names(ctx, "lsplaylists")
}

func (c *Client) names(ctx context.Context, command string, args ...string) ([]string, error) {
	out, err := c.invoke(ctx, command, args, nil)
	if err != nil {
		return nil, err
	}
	return parseNames(out), nil
}

// Stats returns library-wide artist/album/song counts.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	out, err := c.invoke(ctx, "stats", nil, nil)
	if err != nil {
		return Stats{}, err
	}
	return parseStats(out), nil
}

// Current returns the currently loaded track, or nil when there is none.
func (c *Client) Current(ctx context.Context) (*Track, error) {
	tracks, err := c.tracks(ctx, "current", nil)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, nil
	}
	return &tracks[0], nil
}

// Queue returns the daemon's current play queue in order.
func (c *Client) Queue(ctx context.Context) ([]Track, error) {
	return c.tracks(ctx, "playlist", nil)
}

// Status returns a snapshot of playback state.
func (c *Client) Status(ctx context.Context) (Status, error) {
	out, err := c.invoke(ctx, "status", nil, []string{"-f", trackFormat})
	if err != nil {
		return Status{}, err
	}
	return parseStatus(out)
}

// Playing reports whether the daemon is currently playing.
func (c *Client) Playing(ctx context.Context) (bool, error) {
	status, err := c.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Playing(), nil
}

// Search returns tracks loosely matching the free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]Track, error) {
	return c.tracks(ctx, "search", parseQuery(query))
}

// Find returns tracks exactly matching the free-text query.
func (c *Client) Find(ctx context.Context, query string) ([]Track, error) {
	return c.tracks(ctx, "find", parseQuery(query))
}

// SearchTypes returns the search types the daemon accepts. mpc offers no
// way to ask directly, so an invalid type is sent on purpose and the list
// is read out of the resulting error.
func (c *Client) SearchTypes(ctx context.Context) ([]string, error) {
	_, err := c.Search(ctx, "whereverwhenever:shakira!")
	var typeErr *InvalidTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Valid, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("daemon did not report its search types")
}

// PlayPause toggles playback: pause when playing, play otherwise. This is
// the one operation that reads daemon state before acting.
func (c *Client) PlayPause(ctx context.Context) error {
	playing, err := c.Playing(ctx)
	if err != nil {
		return err
	}
	if playing {
		return c.command(ctx, "pause")
	}
	return c.command(ctx, "play")
}

// Play starts playback at the current queue position.
func (c *Client) Play(ctx context.Context) error {
	return c.command(ctx, "play")
}

// PlayPosition starts playback at the given 1-based queue position.
func (c *Client) PlayPosition(ctx context.Context, pos int) error {
	return c.command(ctx, "play", strconv.Itoa(pos))
}

// Stop halts playback.
func (c *Client) Stop(ctx context.Context) error {
	return c.command(ctx, "stop")
}

// Next skips to the next queue entry.
func (c *Client) Next(ctx context.Context) error {
	return c.command(ctx, "next")
}

// Previous skips back to the previous queue entry.
func (c *Client) Previous(ctx context.Context) error {
	return c.command(ctx, "prev")
}

// LoadPlaylist appends the named saved playlist to the queue.
func (c *Client) LoadPlaylist(ctx context.Context, name string) error {
	return c.command(ctx, "load", name)
}

// Clear empties the play queue.
func (c *Client) Clear(ctx context.Context) error {
	return c.command(ctx, "clear")
}

// Rescan triggers a rescan of the daemon's music library.
func (c *Client) Rescan(ctx context.Context) error {
	return c.command(ctx, "rescan")
}

// Add appends the track with the given file path to the queue.
func (c *Client) Add(ctx context.Context, file string) error {
	return c.command(ctx, "add", file)
}

// Remove deletes the first queue entry whose file path matches file. The
// queue is scanned because mpc deletes by position, not by path.
func (c *Client) Remove(ctx context.Context, file string) error {
	queue, err := c.Queue(ctx)
	if err != nil {
		return err
	}
	for i, track := range queue {
		if track.File == file {
			// mpc numbers queue positions from 1.
			return c.command(ctx, "del", strconv.Itoa(i+1))
		}
	}
	return fmt.Errorf("track %q is not in the queue", file)
}

// SetVolume sets the output volume to an absolute percentage.
func (c *Client) SetVolume(ctx context.Context, percent int) error {
	return c.command(ctx, "volume", strconv.Itoa(percent))
}

// ChangeVolume adjusts the output volume by a relative amount.
func (c *Client) ChangeVolume(ctx context.Context, delta int) error {
	arg := strconv.Itoa(delta)
	if delta >= 0 {
		arg = "+" + arg
	}
	return c.command(ctx, "volume", arg)
}

// Mute sets the volume to zero.
func (c *Client) Mute(ctx context.Context) error {
	return c.SetVolume(ctx, 0)
}

// VolumeUp raises the volume by VolumeStep.
func (c *Client) VolumeUp(ctx context.Context) error {
	return c.ChangeVolume(ctx, VolumeStep)
}

// VolumeDown lowers the volume by VolumeStep.
func (c *Client) VolumeDown(ctx context.Context) error {
	return c.ChangeVolume(ctx, -VolumeStep)
}

// command runs an output-less helper command, discarding stdout.
func (c *Client) command(ctx context.Context, name string, args ...string) error {
	_, err := c.invoke(ctx, name, args, nil)
	return err
}
