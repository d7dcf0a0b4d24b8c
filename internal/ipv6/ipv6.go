// Package ipv6 enables dual-stack networking in the docker daemon.
//
// Docker's default daemon config leaves IPv6 disabled, which breaks
// service discovery on some hosts. Enabling it per-daemon has no impact
// outside the Docker environment, so the installer applies this fix
// unconditionally.
package ipv6

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/brewblox/brewblox-ctl/internal/messages"
	"github.com/brewblox/brewblox-ctl/internal/shell"
)

// DefaultDaemonConfig is the stock docker daemon config location.
const DefaultDaemonConfig = "/etc/docker/daemon.json"

// fixedCIDR is the IPv6 subnet assigned to the docker default bridge.
const fixedCIDR = "2001:db8:1::/64"

var (
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)

	processesFunc = process.Processes
	readFileFunc  = os.ReadFile
)

// Enable ensures the docker daemon config enables IPv6, writing the
// updated config through sudo and optionally restarting the daemon.
// Already-enabled configs are left untouched.
func Enable(runner shell.Runner, configFile string, restart bool, out io.Writer, errOut io.Writer) error {
	path := configFile
	if path == "" {
		path = discoverDaemonConfig()
	}

	cfg, err := readDaemonConfig(path)
	if err != nil {
		return err
	}

	if enabled, ok := cfg["ipv6"].(bool); ok && enabled {
		infoColor.Fprintln(out, messages.InfoIPv6Present)
		return nil
	}

	cfg["ipv6"] = true
	cfg["fixed-cidr-v6"] = fixedCIDR

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf(messages.ErrIPv6MarshalFmt, err)
	}

	infoColor.Fprintf(out, messages.InfoIPv6ConfigFmt+"\n", path)
	writeCmd := fmt.Sprintf("echo %s | sudo tee %s > /dev/null", shell.Quote(string(data)), shell.Quote(path))
	if err := runner.Run(writeCmd); err != nil {
		return fmt.Errorf(messages.ErrIPv6WriteFmt, path, err)
	}

	if restart {
		if err := runner.Run("sudo systemctl restart docker"); err != nil {
			warnColor.Fprintln(errOut, messages.WarnIPv6Restart)
		}
	}
	return nil
}

// readDaemonConfig parses the daemon config at path; a missing file is an
// empty config.
func readDaemonConfig(path string) (map[string]any, error) {
	data, err := readFileFunc(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ErrIPv6ConfigFmt, path, err)
	}
	cfg := map[string]any{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf(messages.ErrIPv6InvalidFmt, path, err)
		}
	}
	return cfg, nil
}

// discoverDaemonConfig returns the --config-file of the running dockerd,
// or the stock location. Some hosts (Synology) run the daemon with a
// custom config path.
func discoverDaemonConfig() string {
	procs, err := processesFunc()
	if err != nil {
		return DefaultDaemonConfig
	}
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil || name != "dockerd" {
			continue
		}
		args, err := proc.CmdlineSlice()
		if err != nil {
			continue
		}
		for i, arg := range args {
			if arg == "--config-file" && i+1 < len(args) {
				return args[i+1]
			}
			if value, ok := strings.CutPrefix(arg, "--config-file="); ok {
				return value
			}
		}
	}
	return DefaultDaemonConfig
}
