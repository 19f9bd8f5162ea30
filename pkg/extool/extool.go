// Package extool runs the external programs we depend on, reformat.pl
// from hh-suite and plmc. Everything goes through the Runner interface,
// so the rest of the code does not care how a program is started and
// tests can substitute a fake.
package extool

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Result is what we get back from a program that ran.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner starts a program and waits for it. If the program cannot be
// started or exits with a non-zero status, the error is an
// *ExternalToolError. The Result is filled in as far as we got.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// RunnerFunc lets an ordinary function act as a Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) (Result, error)

func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) (Result, error) {
	return f(ctx, name, args...)
}

// ExternalToolError means the program failed, as opposed to our own code.
// ExitCode is -1 if the program never ran or was killed.
type ExternalToolError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExternalToolError) Error() string {
	msg := e.Tool + " failed"
	if e.ExitCode >= 0 {
		msg += " with exit status " + strconv.Itoa(e.ExitCode)
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\nstderr:\n" + s
	}
	return msg
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

// Exec runs programs with os/exec. Dir, if set, is the working directory.
type Exec struct {
	Dir string
}

// Run starts the program and collects everything it says.
func (x Exec) Run(ctx context.Context, name string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = x.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	res.ExitCode = -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	}
	if ctx.Err() != nil { // killed because we were told to stop
		err = ctx.Err()
	}
	return res, &ExternalToolError{
		Tool: name, Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr, Err: err,
	}
}

// Logger returns l, or a logger that throws everything away if l is nil.
func Logger(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}

// LogOutput logs whatever a program wrote. We do not try to understand
// it. A program that wrote nothing produces no log lines.
func LogOutput(logger *log.Logger, tool string, res Result) {
	if s := strings.TrimSpace(res.Stdout); s != "" {
		logger.Info("program output", "tool", tool, "stdout", s)
	}
	if s := strings.TrimSpace(res.Stderr); s != "" {
		logger.Info("program output", "tool", tool, "stderr", s)
	}
}

// RunLogged runs a program through r, logs what it said and returns an
// *ExternalToolError for a non-zero exit, even if r did not.
func RunLogged(ctx context.Context, r Runner, logger *log.Logger, name string, args ...string) (Result, error) {
	logger = Logger(logger)
	logger.Debug("running", "cmd", name+" "+strings.Join(args, " "))
	res, err := r.Run(ctx, name, args...)
	LogOutput(logger, name, res)
	if err == nil && res.ExitCode != 0 {
		err = &ExternalToolError{Tool: name, Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return res, err
}
