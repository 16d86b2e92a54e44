// Package runner executes the post-install commands of a freshly created
// project as child processes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// ErrEmptyCommand indicates a command string contained no program name.
var ErrEmptyCommand = errors.New("runner: empty command")

// Command is a program name plus its arguments.
type Command struct {
	Name string
	Args []string
}

// Parse splits a shell-like command line ("pnpm install --frozen-lockfile")
// into a Command. Quoting follows POSIX shell rules; no expansion is done.
func Parse(line string) (Command, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("parse command %q: %w", line, err)
	}
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}
	return Command{Name: fields[0], Args: fields[1:]}, nil
}

// String renders the command for display.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs a command with dir as its working directory and returns
// once it exits.
type Runner interface {
	Run(ctx context.Context, dir string, cmd Command) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewExecRunner creates an ExecRunner wired to the process's standard streams.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run executes cmd in dir. A missing executable or a non-zero exit status
// is returned as an error.
func (r *ExecRunner) Run(ctx context.Context, dir string, cmd Command) error {
	if cmd.Name == "" {
		return ErrEmptyCommand
	}

	path, err := exec.LookPath(cmd.Name)
	if err != nil {
		return fmt.Errorf("find %s: %w", cmd.Name, err)
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Dir = dir
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	r.Logger.Debug("running command", "cmd", cmd.String(), "dir", dir)

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.Logger.Debug("command failed", "cmd", cmd.String(), "exit_code", exitErr.ExitCode())
		}
		return fmt.Errorf("%s: %w", cmd.String(), err)
	}

	r.Logger.Debug("command finished", "cmd", cmd.String())
	return nil
}
