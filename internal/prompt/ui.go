// Package prompt provides the interactive confirmation primitives.
//
// Every decision-producing prompt returns either a value or ErrAborted;
// callers propagate the abort upward so a declined confirmation unwinds as
// a clean exit instead of a failure.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/brewblox/brewblox-ctl/internal/terminal"
)

// ErrAborted signals that the operator declined a confirmation or
// interrupted a prompt. It propagates as a clean, non-error exit.
var ErrAborted = errors.New("aborted by user")

// UI defines the interaction methods used by the decision resolver.
type UI interface {
	// Confirm renders a yes/no prompt and returns the answer.
	Confirm(title string, def bool) (bool, error)
	// Select renders a single-choice prompt.
	Select(title string, options []string, def string) (string, error)
	// AwaitEnter blocks until the operator acknowledges with any input.
	AwaitEnter(title string) error
}

// New returns a huh-backed UI on an interactive terminal and a plain
// line-reader UI otherwise.
func New() UI {
	if terminal.IsInteractive() {
		return NewHuhUI()
	}
	return NewReaderUI(os.Stdin, os.Stderr)
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct{}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a new HuhUI.
func NewHuhUI() *HuhUI {
	return &HuhUI{}
}

// promptKeyMap maps both Ctrl+C and Esc to form abort; either decline
// unwinds the whole flow, there is no back navigation between prompts.
func promptKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	return km
}

// formFilter converts InterruptMsg (huh's CancelCmd or an external SIGINT)
// to QuitMsg so bubbletea takes the graceful shutdown path and the
// renderer clears the form output.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// runForm runs the form and maps operator aborts to ErrAborted.
func (ui *HuhUI) runForm(form *huh.Form) error {
	form.WithKeyMap(promptKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(formFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, def bool) (bool, error) {
	value := def
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&value),
		),
	))
	if err != nil {
		return false, err
	}
	return value, nil
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []string, def string) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}
	value := def
	err := ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&value),
		),
	))
	if err != nil {
		return "", err
	}
	return value, nil
}

// AwaitEnter blocks for an explicit operator acknowledgment.
func (ui *HuhUI) AwaitEnter(title string) error {
	var ignored string
	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&ignored),
		),
	))
}
