package sceneconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a declarative scene file into a Description. Callers
// resolve it into a renderable Scene with Description.Build. A missing
// or malformed file is a configuration error, returned rather than
// panicking.
func LoadYAML(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sceneconfig: read %s: %w", path, err)
	}

	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("sceneconfig: parse %s: %w", path, err)
	}
	return &d, nil
}
