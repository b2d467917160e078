package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() PaletteConfig {
	cfg, err := parseConfig(defaultsYAML)
	if err != nil {
		// defaults.yaml ships with the binary; failing to parse it is a build defect.
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}
