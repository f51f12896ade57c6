package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// DefaultInventoryPath is the inventory file used when none is given.
const DefaultInventoryPath = "inventory_config.json"

// LoadFile reads, parses and validates an inventory file.
// JSON is the documented format; YAML is accepted as well.
func LoadFile(path string) (*InventoryConfig, error) {
	if path == "" {
		path = DefaultInventoryPath
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates inventory content.
// Unknown keys are rejected so that typos do not silently drop reservations.
func Parse(data []byte) (*InventoryConfig, error) {
	var cfg InventoryConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("inventory validation failed: %w", err)
	}

	return &cfg, nil
}
