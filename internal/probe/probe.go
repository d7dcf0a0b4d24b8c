// Package probe answers "is X already true on this host?".
//
// Findings are ephemeral: every invocation re-probes the host, nothing is
// cached across runs.
package probe

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/brewblox/brewblox-ctl/internal/envfile"
)

// Probe reports host capability state consulted by the decision resolver.
type Probe interface {
	CommandExists(name string) bool
	IsDockerUser() bool
	PathExists(path string) bool
	IsEmptyDir(path string) bool
	IsManagedDir(path string) bool
	DaemonRunning() bool
	USBDevicePresent() bool
	Username() string
}

// HostProbe implements Probe against the live host.
type HostProbe struct {
	lookPath    func(string) (string, error)
	currentUser func() (*user.User, error)
	processes   func() ([]*process.Process, error)
	usbGlob     string
}

// New returns a HostProbe wired to the real host.
func New() *HostProbe {
	return &HostProbe{
		lookPath:    exec.LookPath,
		currentUser: user.Current,
		processes:   process.Processes,
		usbGlob:     "/sys/bus/usb/devices/*/idVendor",
	}
}

// CommandExists reports whether the named binary is on PATH.
func (p *HostProbe) CommandExists(name string) bool {
	_, err := p.lookPath(name)
	return err == nil
}

// IsDockerUser reports whether the operating user belongs to the docker group.
func (p *HostProbe) IsDockerUser() bool {
	u, err := p.currentUser()
	if err != nil {
		return false
	}
	ids, err := u.GroupIds()
	if err != nil {
		return false
	}
	for _, id := range ids {
		g, err := user.LookupGroupId(id)
		if err != nil {
			continue
		}
		if g.Name == "docker" {
			return true
		}
	}
	return false
}

// Username returns the operating user's name, or an empty string.
func (p *HostProbe) Username() string {
	u, err := p.currentUser()
	if err != nil {
		return ""
	}
	return u.Username
}

// PathExists reports whether path exists.
func (p *HostProbe) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsEmptyDir reports whether path is a directory with no entries.
func (p *HostProbe) IsEmptyDir(path string) bool {
	entries, err := os.ReadDir(path)
	return err == nil && len(entries) == 0
}

// IsManagedDir reports whether path looks like a Brewblox directory:
// it holds a .env file whose schema version parses as a version string.
func (p *HostProbe) IsManagedDir(path string) bool {
	env, err := envfile.ReadFile(filepath.Join(path, envfile.FileName))
	if err != nil {
		return false
	}
	raw, ok := env[envfile.CfgVersionKey]
	if !ok {
		return false
	}
	_, err = goversion.NewVersion(raw)
	return err == nil
}

// DaemonRunning reports whether a docker daemon process is present.
func (p *HostProbe) DaemonRunning() bool {
	procs, err := p.processes()
	if err != nil {
		return false
	}
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		if name == "dockerd" {
			return true
		}
	}
	return false
}

// Spark controllers enumerate as Particle (Spark 2/3) or Silicon Labs
// CP210x (Spark 4) USB devices.
var sparkUSBVendors = []string{"2b04", "10c4"}

// USBDevicePresent reports whether a supported Spark is connected over USB.
func (p *HostProbe) USBDevicePresent() bool {
	matches, err := filepath.Glob(p.usbGlob)
	if err != nil {
		return false
	}
	for _, m := range matches {
		data, err := os.ReadFile(m)
		if err != nil {
			continue
		}
		vendor := strings.ToLower(strings.TrimSpace(string(data)))
		for _, want := range sparkUSBVendors {
			if vendor == want {
				return true
			}
		}
	}
	return false
}
