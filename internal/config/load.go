package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file name looked up in the working
// directory when no path is given.
const DefaultFile = "stackplan.yaml"

// LoadFile reads and parses the configuration tree from a YAML file.
// Value types are checked during decoding, so a string where a count is
// expected fails here rather than at descriptor-construction time.
func LoadFile(path string) (*Tree, error) {
	if path == "" {
		path = DefaultFile
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Load(data)
}

// Load parses the configuration tree from YAML bytes.
func Load(data []byte) (*Tree, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var tree Tree
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: &tree,
		// Reject e.g. booleans where counts are expected instead of
		// coercing them.
		WeaklyTypedInput: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &tree, nil
}
