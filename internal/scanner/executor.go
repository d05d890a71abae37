package scanner

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
)

// Command describes one subprocess invocation. Nil streams are connected to
// the null device.
type Command struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line, quoting arguments that contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, a := range append([]string{c.Name}, c.Args...) {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Status is the outcome of a process that was started.
type Status struct {
	Command Command
	Code    int    // exit code, -1 when killed by a signal
	Signal  string // set when the process was killed by a signal
}

// Success reports a zero exit without a signal.
func (s Status) Success() bool {
	return s.Code == 0 && s.Signal == ""
}

func (s Status) String() string {
	if s.Signal != "" {
		return fmt.Sprintf("%s was killed by signal %s", s.Command, s.Signal)
	}
	return fmt.Sprintf("%s exited with code %d", s.Command, s.Code)
}

// LaunchError reports a process that could not be started at all.
type LaunchError struct {
	Command Command
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Runner executes a command synchronously.
type Runner interface {
	Run(cmd Command) (Status, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{}

// Run blocks until the process exits. A non-zero exit is not an error; it is
// reported through Status. Only a launch failure returns a *LaunchError.
func (ExecRunner) Run(c Command) (Status, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	status := Status{Command: c}
	err := cmd.Run()
	if err == nil {
		return status, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return status, &LaunchError{Command: c, Err: err}
	}

	status.Code = exitErr.ExitCode()
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		status.Signal = ws.Signal().String()
	}
	return status, nil
}

// FakeRunner records commands and answers them with Handler. Without a
// Handler every command succeeds.
type FakeRunner struct {
	Handler  func(cmd Command) (Status, error)
	Commands []Command
}

var _ Runner = &FakeRunner{}

func (f *FakeRunner) Run(c Command) (Status, error) {
	f.Commands = append(f.Commands, c)
	if f.Handler == nil {
		return Status{Command: c}, nil
	}
	return f.Handler(c)
}
