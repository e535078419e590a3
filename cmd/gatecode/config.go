package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// cliConfig holds output preferences. The codec itself takes no
// configuration; only presentation is configurable.
type cliConfig struct {
	Output outputConfig `toml:"output"`
}

type outputConfig struct {
	// Format selects inspect/registries rendering: "table" or "plain".
	Format string `toml:"format"`
	// Color is "auto", "always", or "never".
	Color string `toml:"color"`
}

func defaultConfig() *cliConfig {
	return &cliConfig{
		Output: outputConfig{
			Format: "table",
			Color:  "auto",
		},
	}
}

// loadConfig reads a TOML configuration file. An empty path returns the
// defaults.
func loadConfig(path string) (*cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	switch cfg.Output.Format {
	case "table", "plain":
	default:
		return nil, fmt.Errorf("config %s: output.format must be \"table\" or \"plain\", have %q", path, cfg.Output.Format)
	}
	switch cfg.Output.Color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("config %s: output.color must be \"auto\", \"always\" or \"never\", have %q", path, cfg.Output.Color)
	}
	return cfg, nil
}
