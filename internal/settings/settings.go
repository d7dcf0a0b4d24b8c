// Package settings loads optional user defaults for brewblox-ctl from
// ~/.config/brewblox-ctl.toml. A missing file yields built-in defaults;
// a malformed file is an error so typos do not silently change behavior.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultRelease is the release track used when neither flags nor the
// settings file pick one.
const DefaultRelease = "edge"

// DefaultAptPackages are the apt dependencies installed by default.
var DefaultAptPackages = []string{"curl", "net-tools", "libssl-dev", "libffi-dev", "avahi-daemon"}

// Settings holds operator defaults. Pointer fields distinguish "unset"
// from an explicit false.
type Settings struct {
	Release     string   `toml:"release"`
	AptPackages []string `toml:"apt_packages"`
	SkipConfirm *bool    `toml:"skip_confirm"`
}

// Path returns the settings file location.
func Path() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "brewblox-ctl.toml"), nil
}

// Load reads the settings file. A missing file is not an error.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads and validates the settings file at path.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("settings %s holds unrecognized keys: %w", path, err)
	}
	return &s, nil
}

// ReleaseOr returns the flag value, else the settings default, else edge.
func (s *Settings) ReleaseOr(flag string) string {
	if flag != "" {
		return flag
	}
	if s.Release != "" {
		return s.Release
	}
	return DefaultRelease
}

// AptPackagesOr returns the configured apt package list, else the built-ins.
func (s *Settings) AptPackagesOr() []string {
	if len(s.AptPackages) > 0 {
		return s.AptPackages
	}
	return DefaultAptPackages
}

// decodeStrict re-decodes the TOML data rejecting unknown fields.
func decodeStrict(data []byte) error {
	var s Settings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(&s)
}
