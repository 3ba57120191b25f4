// Package execx runs external commands with inherited standard streams and
// preserves their exit status, so a failing delegated command becomes the
// orchestrator's own exit code.
package execx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/open-edge-insights/eii-deployment-tool-backend/pkg/logger"
)

// Runner abstracts subprocess execution so callers can be tested with a
// fake implementation instead of real commands.
type Runner interface {
	// Run executes name with args in dir (or the current directory when dir
	// is empty), streaming stdio to the operator's terminal.
	Run(ctx context.Context, dir string, name string, args ...string) error

	// RunInput is Run with the given string supplied on stdin.
	RunInput(ctx context.Context, input string, name string, args ...string) error
}

// Exec is the real Runner backed by os/exec.
type Exec struct{}

func (Exec) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("Running command", "cmd", name, "args", strings.Join(args, " "), "dir", dir)
	return wrap(name, cmd.Run())
}

func (Exec) RunInput(ctx context.Context, input string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Debug("Running command with input", "cmd", name, "args", strings.Join(args, " "))
	return wrap(name, cmd.Run())
}

// ExitError reports a command that ran to completion but returned a
// non-zero status. The status is carried so it can be propagated as the
// orchestrator's own exit code.
type ExitError struct {
	Cmd  string
	Code int
	err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

func (e *ExitError) Unwrap() error { return e.err }

func wrap(name string, err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Cmd: name, Code: ee.ExitCode(), err: err}
	}
	return fmt.Errorf("%s: %w", name, err)
}

// ExitCode maps an error returned from an action sequence to the process
// exit status: 0 on nil, the delegated command's own status when the chain
// contains an ExitError, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
