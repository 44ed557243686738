package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the axdump.toml render configuration.
type Config struct {
	Render Render `toml:"render"`
}

// Render controls how the tree outline is printed.
type Render struct {
	Indent     string   `toml:"indent"`
	MaxDepth   int      `toml:"max-depth"`  // 0 = unlimited
	ShowBounds bool     `toml:"show-bounds"`
	Properties []string `toml:"properties"` // extra property names to print
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Render: Render{
			Indent:     "  ",
			ShowBounds: true,
		},
	}
}

// LoadConfig parses an axdump.toml file. A missing file is not an error;
// the defaults apply.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := DefaultConfig()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	return c, nil
}
