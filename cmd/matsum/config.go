package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML defaults file. Every field is a
// default only: a flag set explicitly on the command line wins over it.
type fileConfig struct {
	Rows    int   `yaml:"rows"`
	Cols    int   `yaml:"cols"`
	Seed    int64 `yaml:"seed"`
	Threads int   `yaml:"threads"`
	Dynamic bool  `yaml:"dynamic"`
}

// loadConfig reads and decodes a YAML defaults file. Unknown keys are
// rejected so a typo in the file surfaces instead of silently falling
// back to built-in defaults.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
