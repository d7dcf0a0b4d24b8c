package snapshot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brewblox/brewblox-ctl/internal/prompt"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

type stubProbe struct {
	paths map[string]bool
}

func (p *stubProbe) CommandExists(string) bool   { return false }
func (p *stubProbe) IsDockerUser() bool          { return false }
func (p *stubProbe) PathExists(path string) bool { return p.paths[path] }
func (p *stubProbe) IsEmptyDir(string) bool      { return false }
func (p *stubProbe) IsManagedDir(string) bool    { return false }
func (p *stubProbe) DaemonRunning() bool         { return false }
func (p *stubProbe) USBDevicePresent() bool      { return false }
func (p *stubProbe) Username() string            { return "ferment" }

type stubUI struct {
	answer bool
	asked  []string
}

func (ui *stubUI) Confirm(title string, def bool) (bool, error) {
	ui.asked = append(ui.asked, title)
	return ui.answer, nil
}

func (ui *stubUI) Select(title string, options []string, def string) (string, error) {
	return def, nil
}

func (ui *stubUI) AwaitEnter(string) error { return nil }

type stubRunner struct {
	commands []string
}

func (r *stubRunner) Run(cmd string) error {
	r.commands = append(r.commands, cmd)
	return nil
}

func (r *stubRunner) RunAll(steps []shell.Step) error {
	for _, step := range steps {
		if err := r.Run(step.Cmd); err != nil {
			return err
		}
	}
	return nil
}

func TestSaveArchivesDirectory(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{}}
	ui := &stubUI{answer: true}

	err := Save(runner, ui, pr, "/home/ferment/brewblox", "/home/ferment/brewblox.tar.gz", false, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"sudo tar -C /home/ferment -czf /home/ferment/brewblox.tar.gz brewblox",
	}, runner.commands)
	require.Empty(t, ui.asked, "no prompt without an existing archive")
}

func TestSaveExistingArchiveDeclined(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{"/tmp/brewblox.tar.gz": true}}
	ui := &stubUI{answer: false}

	err := Save(runner, ui, pr, "/tmp/brewblox", "/tmp/brewblox.tar.gz", false, &bytes.Buffer{})
	require.True(t, errors.Is(err, prompt.ErrAborted))
	require.Empty(t, runner.commands)
}

func TestSaveExistingArchiveForced(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{"/tmp/brewblox.tar.gz": true}}
	ui := &stubUI{answer: false}

	err := Save(runner, ui, pr, "/tmp/brewblox", "/tmp/brewblox.tar.gz", true, &bytes.Buffer{})
	require.NoError(t, err)
	require.Empty(t, ui.asked)
	require.Len(t, runner.commands, 1)
}

func TestLoadMissingArchive(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{}}

	err := Load(runner, &stubUI{answer: true}, pr, "/tmp/brewblox", "/tmp/missing.tar.gz", false, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
	require.Empty(t, runner.commands)
}

func TestLoadReplacesExistingDirectory(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{
		"/tmp/brewblox.tar.gz": true,
		"/tmp/brewblox":        true,
	}}
	ui := &stubUI{answer: true}

	err := Load(runner, ui, pr, "/tmp/brewblox", "/tmp/brewblox.tar.gz", false, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"sudo rm -rf /tmp/brewblox",
		"mkdir -p /tmp/brewblox",
		"sudo tar -xzf /tmp/brewblox.tar.gz -C /tmp/brewblox --strip-components=1",
	}, runner.commands)
	require.Len(t, ui.asked, 1)
	require.True(t, strings.Contains(ui.asked[0], "erase the current contents"))
}

func TestLoadExistingDirectoryDeclined(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{
		"/tmp/brewblox.tar.gz": true,
		"/tmp/brewblox":        true,
	}}
	ui := &stubUI{answer: false}

	err := Load(runner, ui, pr, "/tmp/brewblox", "/tmp/brewblox.tar.gz", false, &bytes.Buffer{})
	require.True(t, errors.Is(err, prompt.ErrAborted))
	require.Empty(t, runner.commands)
}

func TestLoadFreshDirectory(t *testing.T) {
	runner := &stubRunner{}
	pr := &stubProbe{paths: map[string]bool{"/tmp/brewblox.tar.gz": true}}
	ui := &stubUI{answer: false}

	err := Load(runner, ui, pr, "/tmp/brewblox", "/tmp/brewblox.tar.gz", false, &bytes.Buffer{})
	require.NoError(t, err)
	require.Empty(t, ui.asked)
	require.Equal(t, []string{
		"mkdir -p /tmp/brewblox",
		"sudo tar -xzf /tmp/brewblox.tar.gz -C /tmp/brewblox --strip-components=1",
	}, runner.commands)
}
