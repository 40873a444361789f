package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solarsim/wea/pkg/sunpath"
)

// SiteConfig describes a simulation site: its location plus optional monthly
// optical depths for the Tau model.
type SiteConfig struct {
	Location struct {
		City      string  `yaml:"city"`
		Country   string  `yaml:"country"`
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
		TimeZone  float64 `yaml:"time_zone"`
		Elevation float64 `yaml:"elevation"`
	} `yaml:"location"`
	TauBeam    []*float64 `yaml:"tau_beam,omitempty"`
	TauDiffuse []*float64 `yaml:"tau_diffuse,omitempty"`
}

// LoadSiteConfig reads and validates a YAML site file.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}
	if cfg.Location.Latitude < -90 || cfg.Location.Latitude > 90 {
		return nil, fmt.Errorf("site latitude %.2f out of range", cfg.Location.Latitude)
	}
	if cfg.Location.Longitude < -180 || cfg.Location.Longitude > 180 {
		return nil, fmt.Errorf("site longitude %.2f out of range", cfg.Location.Longitude)
	}
	return &cfg, nil
}

// SunpathLocation converts the config's location block.
func (c *SiteConfig) SunpathLocation() sunpath.Location {
	return sunpath.Location{
		City:      c.Location.City,
		Country:   c.Location.Country,
		Latitude:  c.Location.Latitude,
		Longitude: c.Location.Longitude,
		TimeZone:  c.Location.TimeZone,
		Elevation: c.Location.Elevation,
	}
}
