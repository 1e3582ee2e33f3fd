package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultOverpassTimeout is the server-side timeout in seconds placed in every query.
const DefaultOverpassTimeout = 25

// YAMLConfig represents the structure of the config.yaml file.
type YAMLConfig struct {
	Search   SearchConfig   `yaml:"search"`
	Overpass OverpassConfig `yaml:"overpass"`
}

// SearchConfig defines the radius choices offered by the UI.
type SearchConfig struct {
	RadiusOptions []int `yaml:"radius_options"` // miles
	DefaultRadius int   `yaml:"default_radius"` // must be one of RadiusOptions

	OverpassTimeout int `yaml:"-"` // seconds, copied from OverpassConfig
}

// OverpassConfig tunes the POI query.
type OverpassConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DefaultSearch returns the built-in search settings.
func DefaultSearch() SearchConfig {
	return SearchConfig{
		RadiusOptions:   []int{15, 25, 35},
		DefaultRadius:   15,
		OverpassTimeout: DefaultOverpassTimeout,
	}
}

// LoadYAMLConfig loads the YAML configuration file at path.
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyYAML overlays settings from the YAML file onto c.Search.
// A nil YAMLConfig leaves the defaults untouched.
func (c *Config) ApplyYAML(y *YAMLConfig) error {
	if y == nil {
		return nil
	}

	search := c.Search
	if len(y.Search.RadiusOptions) > 0 {
		search.RadiusOptions = y.Search.RadiusOptions
		search.DefaultRadius = y.Search.RadiusOptions[0]
	}
	if y.Search.DefaultRadius != 0 {
		search.DefaultRadius = y.Search.DefaultRadius
	}
	if y.Overpass.TimeoutSeconds > 0 {
		search.OverpassTimeout = y.Overpass.TimeoutSeconds
	}

	if err := search.Validate(); err != nil {
		return err
	}
	c.Search = search
	return nil
}

// Validate checks that the radius options are positive and include the default.
func (s SearchConfig) Validate() error {
	for _, r := range s.RadiusOptions {
		if r <= 0 {
			return fmt.Errorf("radius option %d must be positive", r)
		}
	}
	if !slices.Contains(s.RadiusOptions, s.DefaultRadius) {
		return fmt.Errorf("default radius %d is not one of %v", s.DefaultRadius, s.RadiusOptions)
	}
	return nil
}
