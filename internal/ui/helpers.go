package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strum-tui/strum/internal/mpd"
)

// truncate truncates a string to max runes with ellipsis. Cutting on runes
// keeps multi-byte track metadata valid UTF-8.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// friendlyError reduces a client error to a single line suitable for the
// header. Typed errors get a shorter rendering than their full Error text.
func friendlyError(err error) string {
	if err == nil {
		return ""
	}

	var connErr *mpd.ConnectionError
	if errors.As(err, &connErr) {
		return fmt.Sprintf("cannot reach MPD at %s:%s", connErr.Host, connErr.Port)
	}

	var typeErr *mpd.InvalidTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("%q is not a search type (try %s)", typeErr.What, strings.Join(typeErr.Valid, "/"))
	}

	var cmdErr *mpd.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Stderr != "" {
			return cmdErr.Stderr
		}
		return fmt.Sprintf("%s failed (exit %d)", cmdErr.Command, cmdErr.ExitCode)
	}

	return err.Error()
}
