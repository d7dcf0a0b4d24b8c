package install

import (
	"errors"
	"strings"

	"github.com/brewblox/brewblox-ctl/internal/shell"
)

// fakeProbe reports scripted host capability state.
type fakeProbe struct {
	commands   map[string]bool
	dockerUser bool
	paths      map[string]bool
	emptyDirs  map[string]bool
	managed    map[string]bool
	daemon     bool
	usb        bool
	username   string
}

func newFakeProbe() *fakeProbe {
	return &fakeProbe{
		commands:  map[string]bool{},
		paths:     map[string]bool{},
		emptyDirs: map[string]bool{},
		managed:   map[string]bool{},
		username:  "ferment",
	}
}

func (p *fakeProbe) CommandExists(name string) bool { return p.commands[name] }
func (p *fakeProbe) IsDockerUser() bool             { return p.dockerUser }
func (p *fakeProbe) PathExists(path string) bool    { return p.paths[path] }
func (p *fakeProbe) IsEmptyDir(path string) bool    { return p.emptyDirs[path] }
func (p *fakeProbe) IsManagedDir(path string) bool  { return p.managed[path] }
func (p *fakeProbe) DaemonRunning() bool            { return p.daemon }
func (p *fakeProbe) USBDevicePresent() bool         { return p.usb }
func (p *fakeProbe) Username() string               { return p.username }

// scriptUI answers confirms by prompt substring and records what was asked.
type scriptUI struct {
	answers map[string]bool // keyed by substring of the prompt title
	def     bool            // answer when no substring matches
	asked   []string
	entered []string
}

func (ui *scriptUI) Confirm(title string, def bool) (bool, error) {
	ui.asked = append(ui.asked, title)
	for substr, answer := range ui.answers {
		if strings.Contains(title, substr) {
			return answer, nil
		}
	}
	return ui.def, nil
}

func (ui *scriptUI) Select(title string, options []string, def string) (string, error) {
	ui.asked = append(ui.asked, title)
	return def, nil
}

func (ui *scriptUI) AwaitEnter(title string) error {
	ui.entered = append(ui.entered, title)
	return nil
}

func (ui *scriptUI) askedContaining(substr string) bool {
	for _, title := range ui.asked {
		if strings.Contains(title, substr) {
			return true
		}
	}
	return false
}

// recordingRunner records commands and fails on request.
type recordingRunner struct {
	commands []string
	failOn   string
}

func (r *recordingRunner) Run(cmd string) error {
	r.commands = append(r.commands, cmd)
	if r.failOn != "" && strings.Contains(cmd, r.failOn) {
		return &shell.CommandError{Cmd: cmd, ExitCode: 1, Err: errors.New("scripted failure")}
	}
	return nil
}

func (r *recordingRunner) RunAll(steps []shell.Step) error {
	for _, step := range steps {
		if err := r.Run(step.Cmd); err != nil && step.Tolerance != shell.Tolerated {
			return err
		}
	}
	return nil
}

func (r *recordingRunner) ranContaining(substr string) bool {
	for _, cmd := range r.commands {
		if strings.Contains(cmd, substr) {
			return true
		}
	}
	return false
}
