package flasher

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var readFileFunc = os.ReadFile

// composeServices lists the service names declared in a compose file.
func composeServices(path string) ([]string, error) {
	data, err := readFileFunc(path)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Services map[string]yaml.Node `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	names := make([]string, 0, len(doc.Services))
	for name := range doc.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
