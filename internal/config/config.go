package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chiller-sim/internal/profile"
	"chiller-sim/internal/sim"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Controller ControllerConfig `yaml:"controller"`
}

type SimulationConfig struct {
	TimeScaleMinutes float64 `yaml:"time_scale_minutes"`
	SampleCount      int     `yaml:"sample_count"`

	// CustomLoad is an inline comma-separated list of kW values. LoadFile
	// points at a file with the same format; CustomLoad wins when both are
	// set. Leave both empty for the synthetic profile.
	CustomLoad string `yaml:"custom_load"`
	LoadFile   string `yaml:"load_file"`
}

type ControllerConfig struct {
	Kp float64 `yaml:"kp"`
	Ki float64 `yaml:"ki"`
}

// Default returns the stock one-hour synthetic simulation.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TimeScaleMinutes: 60,
			SampleCount:      profile.DefaultSampleCount,
		},
		Controller: ControllerConfig{
			Kp: 0.8,
			Ki: 0.3,
		},
	}
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}

	// If load_file is set and no inline values were given, read the file.
	// Relative paths are preferred relative to the config file directory,
	// falling back to the path as given.
	if c.Simulation.LoadFile != "" && c.Simulation.CustomLoad == "" {
		loadPath := c.Simulation.LoadFile
		if !filepath.IsAbs(loadPath) {
			cand := filepath.Join(filepath.Dir(path), loadPath)
			if _, err := os.Stat(cand); err == nil {
				loadPath = cand
			}
		}
		raw, err := os.ReadFile(loadPath)
		if err != nil {
			return nil, fmt.Errorf("load_file: %w", err)
		}
		c.Simulation.CustomLoad = strings.TrimSpace(string(raw))
	}

	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Simulation.TimeScaleMinutes <= 0 {
		return errors.New("simulation.time_scale_minutes must be > 0")
	}
	if c.Simulation.SampleCount < 2 {
		return errors.New("simulation.sample_count must be >= 2")
	}
	if c.Controller.Kp < 0 || c.Controller.Ki < 0 {
		return errors.New("controller gains must be >= 0")
	}
	// Validate the custom load by parsing it the way the engine will.
	if c.Simulation.CustomLoad != "" {
		if _, err := profile.ParseCustom(c.Simulation.CustomLoad, c.Simulation.TimeScaleMinutes); err != nil {
			return fmt.Errorf("custom load invalid: %w", err)
		}
	}
	return nil
}

// ToParams converts a validated config into engine parameters.
func (c *Config) ToParams() sim.Params {
	return sim.Params{
		TimeScaleMinutes: c.Simulation.TimeScaleMinutes,
		Kp:               c.Controller.Kp,
		Ki:               c.Controller.Ki,
		SampleCount:      c.Simulation.SampleCount,
		CustomLoad:       c.Simulation.CustomLoad,
	}
}

// Merge overlays non-zero fields from override onto base.
// Used when a config file provides defaults and flags/requests override them.
func Merge(base, override Config) Config {
	out := base
	if override.Simulation.TimeScaleMinutes != 0 {
		out.Simulation.TimeScaleMinutes = override.Simulation.TimeScaleMinutes
	}
	if override.Simulation.SampleCount != 0 {
		out.Simulation.SampleCount = override.Simulation.SampleCount
	}
	if override.Simulation.CustomLoad != "" {
		out.Simulation.CustomLoad = override.Simulation.CustomLoad
	}
	if override.Simulation.LoadFile != "" {
		out.Simulation.LoadFile = override.Simulation.LoadFile
	}
	// Zero is a meaningful gain, so negative sentinels don't work here; use
	// explicit overrides at the call site when a zero gain must win.
	if override.Controller.Kp != 0 {
		out.Controller.Kp = override.Controller.Kp
	}
	if override.Controller.Ki != 0 {
		out.Controller.Ki = override.Controller.Ki
	}
	return out
}
