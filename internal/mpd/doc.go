// Package mpd provides a client for the Music Player Daemon that works by
// shelling out to the mpc command-line helper.
//
// # Overview
//
// Rather than speaking the MPD wire protocol directly, this package runs one
// mpc process per operation and parses its textual output into typed
// records. The daemon connection, protocol handshake, and command encoding
// are all mpc's problem; this package's job is building argument vectors,
// decoding stdout, and classifying stderr.
//
// # Architecture
//
// The package is split by responsibility:
//
//   - client.go: argument construction and the public operations
//   - runner.go: the os/exec seam (swapped for a fake in tests)
//   - parse.go:  decoding tracks, status, stats, and name lists
//   - query.go:  translating free-text search queries into mpc arguments
//   - errors.go: mapping helper failures to typed errors
//   - types.go:  the Track, Status, and Stats records
//
// # Wire Format
//
// Track metadata is requested from mpc with a custom -f format that joins
// artist, album, disc, track, title, and file with a three-character
// delimiter (U+00A0 U+266A U+00A0). The delimiter was chosen so that it
// cannot plausibly appear inside real tag data, making a plain string split
// safe.
//
// # Client Usage
//
//	client := mpd.NewClient(mpd.Options{Host: "localhost", Port: "6600"})
//
//	status, err := client.Status(ctx)
//	if err != nil {
//		log.Printf("status failed: %v", err)
//	}
//
//	tracks, err := client.Search(ctx, "artist:Queen night at the opera")
//
// # Error Handling
//
// Failed invocations are classified into three typed errors:
//
//   - *ConnectionError: the daemon is unreachable ("Connection refused")
//   - *InvalidTypeError: a search used an unknown type; carries the
//     daemon's list of valid types
//   - *CommandError: any other non-zero exit; carries command, args, exit
//     code, and raw stderr
//
// A fourth type, *MalformedOutputError, marks helper output the parser
// expected to understand but could not. It indicates a defect (helper
// version skew or a parser bug) rather than a daemon-side failure.
//
// All errors propagate to the caller unchanged; the package never retries.
//
// # Concurrency
//
// The Client holds no connection and no mutable state, so it is safe for
// concurrent use. Each call spawns an independent child process; ordering
// between overlapping operations is decided by the daemon, not here.
//
// # Configuration
//
// All settings (helper path, host, port, result cap, logger) arrive through
// Options at construction time. The package never reads the environment
// itself; see the config package for how the environment and config file
// are folded into Options.
//
// # Testing Considerations
//
// The runner interface is the intended test seam: substitute a fake that
// returns canned stdout/stderr/exit codes and assert on the argument
// vectors the client builds. The parsers are plain functions over strings
// and are tested directly.
package mpd
