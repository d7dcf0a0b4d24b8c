package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReaderUI implements UI over plain line-based input, for runs without an
// interactive terminal (pipes, provisioning scripts).
type ReaderUI struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReaderUI creates a ReaderUI reading answers from in.
func NewReaderUI(in io.Reader, out io.Writer) *ReaderUI {
	return &ReaderUI{scanner: bufio.NewScanner(in), out: out}
}

// Confirm writes a [Y/n]-style prompt and reads a yes/no answer.
// An empty line picks the default; EOF answers no.
func (ui *ReaderUI) Confirm(title string, def bool) (bool, error) {
	suffix := "[y/N]"
	if def {
		suffix = "[Y/n]"
	}
	for {
		fmt.Fprintf(ui.out, "%s %s: ", title, suffix)
		if !ui.scanner.Scan() {
			if err := ui.scanner.Err(); err != nil {
				return false, err
			}
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(ui.scanner.Text())) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(ui.out, "Please enter y or n.")
	}
}

// Select writes the numbered options and reads a choice.
// An empty line picks the default; EOF picks the default.
func (ui *ReaderUI) Select(title string, options []string, def string) (string, error) {
	fmt.Fprintln(ui.out, title)
	for i, o := range options {
		marker := " "
		if o == def {
			marker = "*"
		}
		fmt.Fprintf(ui.out, " %s %d) %s\n", marker, i+1, o)
	}
	for {
		fmt.Fprintf(ui.out, "Choice [1-%d]: ", len(options))
		if !ui.scanner.Scan() {
			if err := ui.scanner.Err(); err != nil {
				return "", err
			}
			return def, nil
		}
		answer := strings.TrimSpace(ui.scanner.Text())
		if answer == "" {
			return def, nil
		}
		for i, o := range options {
			if answer == fmt.Sprint(i+1) || strings.EqualFold(answer, o) {
				return o, nil
			}
		}
		fmt.Fprintln(ui.out, "Please pick one of the listed options.")
	}
}

// AwaitEnter blocks until a line (any content) or EOF arrives.
func (ui *ReaderUI) AwaitEnter(title string) error {
	fmt.Fprintln(ui.out, title)
	if !ui.scanner.Scan() {
		return ui.scanner.Err()
	}
	return nil
}
