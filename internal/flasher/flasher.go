// Package flasher runs Spark firmware operations through the dockerized
// flasher image. The image needs raw USB access, so services holding the
// device are stopped first and the container runs privileged.
package flasher

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/probe"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

// ErrNoSpark is returned when no Spark is connected over USB.
var ErrNoSpark = errors.New(messages.ErrNoSparkUSB)

const composeFile = "docker-compose.yml"

// Mode selects a firmware operation.
type Mode int

const (
	ModeFlash Mode = iota
	ModeWifi
	ModeParticle
)

// Disabled reports whether the mode is currently unavailable.
// Wifi configuration over USB serial is broken in recent firmware and is
// handled through the UI instead.
func (m Mode) Disabled() bool {
	return m == ModeWifi
}

var (
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
)

// Orchestrator prepares the host and runs the flasher container.
type Orchestrator struct {
	Runner  shell.Runner
	Probe   probe.Probe
	Out     io.Writer
	Err     io.Writer
	Release string
	Pull    bool
}

func (o *Orchestrator) image() string {
	release := o.Release
	if release == "" {
		release = "edge"
	}
	return "brewblox/firmware-flasher:" + release
}

// dockerPrefix is empty for docker group members and "sudo " otherwise.
func (o *Orchestrator) dockerPrefix() string {
	if o.Probe.IsDockerUser() {
		return ""
	}
	return "sudo "
}

// Flash writes new firmware to a USB-connected Spark.
func (o *Orchestrator) Flash() error {
	if err := o.prepare(); err != nil {
		return err
	}
	infoColor.Fprintln(o.Out, messages.InfoFlashingSpark)
	return o.runFlasher("flash")
}

// Particle starts the flasher container with the Particle CLI available.
// With an empty command the container drops into an interactive shell.
func (o *Orchestrator) Particle(command string) error {
	if err := o.prepare(); err != nil {
		return err
	}
	infoColor.Fprintln(o.Out, messages.InfoStartingShell)
	if command == "" {
		infoColor.Fprintln(o.Out, messages.ParticleShellHint)
	}
	return o.runFlasher(command)
}

// prepare checks the USB precondition, pulls the flasher image, and
// releases the USB device: the Spark service holds the serial port while
// the stack is up.
func (o *Orchestrator) prepare() error {
	if !o.Probe.USBDevicePresent() {
		return ErrNoSpark
	}

	if !o.Probe.DaemonRunning() {
		warnColor.Fprintln(o.Err, messages.WarnDaemonNotUp)
	}

	if o.Pull {
		infoColor.Fprintln(o.Out, messages.InfoPullingFlasher)
		err := o.Runner.RunAll([]shell.Step{
			{Cmd: fmt.Sprintf("%sdocker pull %s", o.dockerPrefix(), o.image()), Tolerance: shell.Tolerated},
		})
		if err != nil {
			return err
		}
	}

	return o.stopServices()
}

// stopServices brings down a compose stack in the working directory, if
// there is one.
func (o *Orchestrator) stopServices() error {
	if !o.Probe.PathExists(composeFile) {
		return nil
	}

	names, err := composeServices(composeFile)
	if err != nil || len(names) == 0 {
		infoColor.Fprintln(o.Out, messages.InfoStoppingStack)
	} else {
		infoColor.Fprintf(o.Out, messages.InfoStoppingNamed+"\n", strings.Join(names, ", "))
	}
	return o.Runner.Run(fmt.Sprintf("%sdocker-compose down", o.dockerPrefix()))
}

// runFlasher starts the flasher container. /dev is mounted wholesale
// because the Spark re-enumerates with a different device node when it
// switches to DFU mode mid-flash.
func (o *Orchestrator) runFlasher(command string) error {
	cmd := fmt.Sprintf("%sdocker run -it --rm --privileged -v /dev:/dev %s", o.dockerPrefix(), o.image())
	if command != "" {
		cmd += " " + command
	}
	return o.Runner.Run(cmd)
}
