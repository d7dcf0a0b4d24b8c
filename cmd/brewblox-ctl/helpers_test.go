package main

// NOTE: Tests in this file's package mutate the package-level constructor
// seams (newUIFunc, newProbeFunc, newRunnerFunc, loadSettingsFunc).
// Do not use t.Parallel(). Each test must restore seams via t.Cleanup().

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/settings"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

type stubUI struct {
	answers map[string]bool
	def     bool
	asked   []string
	entered []string
}

func (ui *stubUI) Confirm(title string, def bool) (bool, error) {
	ui.asked = append(ui.asked, title)
	for substr, answer := range ui.answers {
		if strings.Contains(title, substr) {
			return answer, nil
		}
	}
	return ui.def, nil
}

func (ui *stubUI) Select(title string, options []string, def string) (string, error) {
	return def, nil
}

func (ui *stubUI) AwaitEnter(title string) error {
	ui.entered = append(ui.entered, title)
	return nil
}

type stubProbe struct {
	commands   map[string]bool
	dockerUser bool
	paths      map[string]bool
	daemon     bool
	usb        bool
}

func (p *stubProbe) CommandExists(name string) bool { return p.commands[name] }
func (p *stubProbe) IsDockerUser() bool             { return p.dockerUser }
func (p *stubProbe) PathExists(path string) bool    { return p.paths[path] }
func (p *stubProbe) IsEmptyDir(string) bool         { return false }
func (p *stubProbe) IsManagedDir(string) bool       { return false }
func (p *stubProbe) DaemonRunning() bool            { return p.daemon }
func (p *stubProbe) USBDevicePresent() bool         { return p.usb }
func (p *stubProbe) Username() string               { return "ferment" }

type stubRunner struct {
	commands []string
	failOn   string
}

func (r *stubRunner) Run(cmd string) error {
	r.commands = append(r.commands, cmd)
	if r.failOn != "" && strings.Contains(cmd, r.failOn) {
		return errors.New("scripted failure")
	}
	return nil
}

func (r *stubRunner) RunAll(steps []shell.Step) error {
	for _, step := range steps {
		if err := r.Run(step.Cmd); err != nil && step.Tolerance != shell.Tolerated {
			return err
		}
	}
	return nil
}

func (r *stubRunner) ranContaining(substr string) bool {
	for _, cmd := range r.commands {
		if strings.Contains(cmd, substr) {
			return true
		}
	}
	return false
}

// installSeams swaps every collaborator constructor for stubs and restores
// them when the test finishes.
func installSeams(t *testing.T, ui *stubUI, pr *stubProbe, runner *stubRunner, cfg *settings.Settings) {
	t.Helper()

	origUI := newUIFunc
	origProbe := newProbeFunc
	origRunner := newRunnerFunc
	origSettings := loadSettingsFunc

	newUIFunc = func() prompt.UI { return ui }
	newProbeFunc = func() probe.Probe { return pr }
	newRunnerFunc = func(io.Writer, io.Writer) shell.Runner { return runner }
	loadSettingsFunc = func() (*settings.Settings, error) { return cfg, nil }

	t.Cleanup(func() {
		newUIFunc = origUI
		newProbeFunc = origProbe
		newRunnerFunc = origRunner
		loadSettingsFunc = origSettings
	})
}

func newStubProbe() *stubProbe {
	return &stubProbe{
		commands: map[string]bool{},
		paths:    map[string]bool{},
		daemon:   true,
		usb:      true,
	}
}
