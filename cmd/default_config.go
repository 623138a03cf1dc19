package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/pagesim/pagesim/sim"
)

// Preset is a named sample reference string in defaults.yaml.
type Preset struct {
	Description string     `yaml:"description"`
	References  []sim.Page `yaml:"references"`
}

// Config represents the full defaults.yaml structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type Config struct {
	Version string            `yaml:"version"`
	Presets map[string]Preset `yaml:"presets"`
}

// parseDefaultsConfig decodes defaults.yaml with strict field checking: typos must cause errors.
func parseDefaultsConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, err
	}
	for name, p := range cfg.Presets {
		if len(p.References) == 0 {
			return Config{}, fmt.Errorf("preset %q has no references", name)
		}
	}
	return cfg, nil
}

// loadDefaultsConfig parses defaults.yaml into a Config struct.
func loadDefaultsConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("Failed to read defaults file %s: %v", path, err)
	}
	cfg, err := parseDefaultsConfig(data)
	if err != nil {
		logrus.Fatalf("Failed to parse defaults YAML: %v", err)
	}
	return cfg
}

// lookupPreset returns the reference string of a named preset.
func (c Config) lookupPreset(name string) ([]sim.Page, error) {
	p, ok := c.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q; available: %v", name, c.presetNames())
	}
	refs := make([]sim.Page, len(p.References))
	copy(refs, p.References)
	return refs, nil
}

func (c Config) presetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
