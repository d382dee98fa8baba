package mpd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// runner is the seam between the client and the operating system. Production
// code uses execRunner; tests substitute a fake that replays canned output.
type runner interface {
	run(ctx context.Context, name string, args []string) (result, error)
}

// result captures everything the client needs from one helper invocation.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// execRunner spawns the helper with os/exec. Exactly one child process per
// call; the process is killed if ctx is cancelled.
type execRunner struct{}

func (execRunner) run(ctx context.Context, name string, args []string) (result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{stdout: stdout.String(), stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Helper ran but exited non-zero; the client classifies this from
		// stderr, so it is not an error at this layer.
		res.exitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, err
	}
	return res, nil
}
