package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/brewblox/brewblox-ctl/internal/install"
	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
)

// Version is overridden at build time.
var Version = "dev"

var executeFunc = execute

var errColor = color.New(color.FgRed)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = Version
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and maps error classes to exit codes. A
// declined confirmation unwinds as a clean exit, not a failure.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	if errors.Is(err, prompt.ErrAborted) {
		_, _ = fmt.Fprintln(stdout, messages.Aborted)
		exit(0)
		return
	}
	var conflict *install.DirConflictError
	if errors.As(err, &conflict) {
		_, _ = errColor.Fprintln(stderr, conflict.Error())
		exit(1)
		return
	}
	_, _ = errColor.Fprintf(stderr, "Error: %v\n", err)
	exit(1)
}
