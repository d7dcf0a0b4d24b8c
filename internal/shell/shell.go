// Package shell executes host shell command lines.
//
// Mutating flows are expressed as ordered Step lists, each step carrying a
// tolerance policy, and executed by one generic runner. A Fatal step that
// exits non-zero aborts the run; a Tolerated step logs a warning and the
// run continues.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/fatih/color"
	"mvdan.cc/sh/v3/syntax"
)

// Tolerance controls whether a failing step aborts the run.
type Tolerance int

const (
	// Fatal steps must succeed; later steps assume they did.
	Fatal Tolerance = iota
	// Tolerated steps are best-effort; failure is logged and skipped past.
	Tolerated
)

// Step is a single shell command line with its failure policy.
type Step struct {
	Cmd       string
	Tolerance Tolerance
}

// Runner executes shell command lines on the host.
type Runner interface {
	// Run executes a single command line; a non-zero exit is an error.
	Run(cmd string) error
	// RunAll executes steps in order, honoring each step's tolerance.
	RunAll(steps []Step) error
}

// CommandError reports a command line that exited non-zero.
type CommandError struct {
	Cmd      string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command `%s` failed with exit code %d", e.Cmd, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs command lines through `sh -c`, echoing each command so
// the operator can audit exactly what ran.
type ExecRunner struct {
	Out io.Writer
	Err io.Writer
}

// NewExecRunner returns a runner wired to stdout/stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Out: os.Stdout, Err: os.Stderr}
}

var warnColor = color.New(color.FgYellow)

// Run executes one command line with the operator's terminal attached.
func (r *ExecRunner) Run(cmdLine string) error {
	fmt.Fprintf(r.Out, "+ %s\n", cmdLine)

	cmd := exec.Command("sh", "-c", cmdLine)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Out
	cmd.Stderr = r.Err
	if err := cmd.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &CommandError{Cmd: cmdLine, ExitCode: code, Err: err}
	}
	return nil
}

// RunAll executes steps in order. Tolerated failures warn and continue;
// the first Fatal failure is returned.
func (r *ExecRunner) RunAll(steps []Step) error {
	for _, step := range steps {
		err := r.Run(step.Cmd)
		if err == nil {
			continue
		}
		if step.Tolerance == Tolerated {
			warnColor.Fprintf(r.Err, "Warning: %v\n", err)
			continue
		}
		return err
	}
	return nil
}

// Quote returns s quoted for safe interpolation into a POSIX command line.
func Quote(s string) string {
	quoted, err := syntax.Quote(s, syntax.LangPOSIX)
	if err != nil {
		// Control bytes in a path; fall back to Go quoting so the
		// command fails loudly instead of splitting silently.
		return strconv.Quote(s)
	}
	return quoted
}
