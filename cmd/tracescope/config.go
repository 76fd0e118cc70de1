package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML layout accepted by -config. Zero values mean
// "not set".
type fileConfig struct {
	Format   string  `yaml:"format"`
	Interval string  `yaml:"interval"`
	Speed    float64 `yaml:"speed"`
	MaxSteps int     `yaml:"max_steps"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}

	return fc, nil
}

// apply copies every set field into cfg unless the matching flag is in set.
func (fc fileConfig) apply(cfg *config, set map[string]bool) error {
	if fc.Format != "" && !set["format"] {
		cfg.format = fc.Format
	}
	if fc.Interval != "" && !set["interval"] {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return fmt.Errorf("config interval: %w", err)
		}
		cfg.interval = d
	}
	if fc.Speed != 0 && !set["speed"] {
		cfg.speed = fc.Speed
	}
	if fc.MaxSteps != 0 && !set["max-steps"] {
		cfg.maxSteps = fc.MaxSteps
	}

	return nil
}
