package checks

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rileyhilliard/tally/internal/errors"
)

// shell returns the user's shell, falling back to /bin/sh.
func shell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// runLocal runs one check through the shell and captures combined output.
// A non-zero exit is a failed check, not an error; err is only set when the
// command couldn't be run or hit its timeout.
func runLocal(ctx context.Context, c Check, timeout time.Duration) (output []byte, exitCode int, err error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	command := exec.CommandContext(ctx, shell(), "-c", c.Run)
	if c.Dir != "" {
		command.Dir = c.Dir
	}

	var buf bytes.Buffer
	command.Stdout = &buf
	command.Stderr = &buf

	runErr := command.Run()
	if runErr == nil {
		return buf.Bytes(), 0, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if ctxErr == context.DeadlineExceeded {
			return buf.Bytes(), -1, errors.WrapWithCode(ctxErr, errors.ErrCheck,
				fmt.Sprintf("Check '%s' timed out after %s", c.Name, timeout),
				"Raise the timeout with --timeout or in .tally.yaml.")
		}
		return buf.Bytes(), -1, ctxErr
	}

	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return buf.Bytes(), exitErr.ExitCode(), nil
	}

	return buf.Bytes(), -1, errors.WrapWithCode(runErr, errors.ErrCheck,
		fmt.Sprintf("Couldn't run check '%s'", c.Name),
		"Make sure the command exists and is executable.")
}
