package cmd

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roomgrid/roomgrid/booking"
)

// TopologyConfig represents the full topology presets file: named building
// shapes a session can be created from.
type TopologyConfig struct {
	Topologies map[string]booking.Topology `yaml:"topologies"`
}

// LoadTopologyConfig parses a presets file. Parsing is strict: unknown YAML
// fields are errors, so a typo in a preset fails loudly instead of silently
// falling back to zero values. Every preset is validated on load.
func LoadTopologyConfig(path string) (TopologyConfig, error) {
	var cfg TopologyConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading topology presets: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing topology presets %s: %w", path, err)
	}

	for name, topo := range cfg.Topologies {
		if err := topo.Validate(); err != nil {
			return cfg, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return cfg, nil
}

// Get returns the named preset.
func (c TopologyConfig) Get(name string) (booking.Topology, bool) {
	topo, ok := c.Topologies[name]
	return topo, ok
}

// Names returns all preset names sorted for stable error messages.
func (c TopologyConfig) Names() []string {
	names := make([]string, 0, len(c.Topologies))
	for name := range c.Topologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
