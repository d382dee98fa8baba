package mpd

import (
	"fmt"
	"regexp"
	"strings"
)

// errorPrefix is prepended by mpc to messages relayed from the daemon.
const errorPrefix = "mpd error:"

// invalidTypePattern matches the daemon's complaint about an unknown search
// type, e.g. `"shoesize" is not a valid search type: <any|artist|album>`.
var invalidTypePattern = regexp.MustCompile(`"(.*?)" is not a valid search type: <(.+)>`)

// ConnectionError indicates the helper could not reach the daemon at all.
type ConnectionError struct {
	Host string
	Port string
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to MPD at %s:%s: check that the host and port are correct and that MPD is running", e.Host, e.Port)
}

// InvalidTypeError indicates a search used a type the daemon does not know.
// Valid carries the daemon's own list of accepted types.
type InvalidTypeError struct {
	What  string
	Valid []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("%q is not a valid search type, choose from %s", e.What, strings.Join(e.Valid, ", "))
}

// CommandError is the catch-all for helper invocations the daemon rejected
// for any other reason.
type CommandError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "no error output"
	}
	return fmt.Sprintf("mpc %s exited with status %d: %s", e.Command, e.ExitCode, msg)
}

// MalformedOutputError indicates helper output that the parser expected to
// match a known shape but could not. It signals a defect (a helper/daemon
// version mismatch or a parser bug), not a recoverable daemon failure.
type MalformedOutputError struct {
	Text string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed mpc output: %q", e.Text)
}

// stripErrorPrefix removes the "mpd error:" prefix mpc adds to daemon
// messages. Text without the prefix is returned trimmed but otherwise as-is.
func stripErrorPrefix(msg string) string {
	trimmed := strings.TrimSpace(msg)
	if !strings.HasPrefix(trimmed, errorPrefix) {
		return trimmed
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, errorPrefix))
}

// parseInvalidType extracts the offending value and the daemon's valid type
// list from an invalid-search-type message. The caller only invokes this
// after matching the shape loosely, so a failure here is a defect.
func parseInvalidType(msg string) (*InvalidTypeError, error) {
	m := invalidTypePattern.FindStringSubmatch(msg)
	if m == nil {
		return nil, &MalformedOutputError{Text: msg}
	}
	return &InvalidTypeError{What: m[1], Valid: strings.Split(m[2], "|")}, nil
}

// classifyError maps a failed invocation to a typed error.
func (c *Client) classifyError(command string, args []string, exitCode int, stderr string) error {
	msg := stripErrorPrefix(stderr)

	if msg == "Connection refused" {
		return &ConnectionError{Host: c.host, Port: c.port}
	}

	if strings.Contains(msg, "is not a valid search type") {
		typeErr, err := parseInvalidType(msg)
		if err != nil {
			return err
		}
		return typeErr
	}

	return &CommandError{
		Command:  command,
		Args:     args,
		ExitCode: exitCode,
		Stderr:   msg,
	}
}
