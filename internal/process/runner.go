// Package process runs submitted command lines as child processes.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrNotExecutable is returned when the command cannot be found or started.
var ErrNotExecutable = errors.New("not an executable command")

// Output is everything a finished command wrote.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Runner executes one command to completion and returns its captured output.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (Output, error)
}

// ExecRunner starts commands with os/exec. Dir, when set, is the working
// directory of every child; the zero value inherits the shell's own.
type ExecRunner struct {
	Dir string
}

// Run blocks until the command exits. A non-zero exit status is not an error:
// the command ran and its output is returned. Children get the null device as
// stdin so they never read from the raw terminal.
func (r ExecRunner) Run(ctx context.Context, name string, args []string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err == nil {
		return out, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return out, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return Output{}, fmt.Errorf("%w: %s: %w", ErrNotExecutable, name, err)
}

// RunFunc adapts a function to the Runner interface.
type RunFunc func(ctx context.Context, name string, args []string) (Output, error)

func (f RunFunc) Run(ctx context.Context, name string, args []string) (Output, error) {
	return f(ctx, name, args)
}
