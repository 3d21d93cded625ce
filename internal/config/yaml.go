package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tmorten/descnote-go/internal/errors"
)

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from a zero value so the file only overrides what it names.
type fileConfig struct {
	Output  string `yaml:"output"`
	Format  string `yaml:"format"`
	Checks  *bool  `yaml:"checks"`
	Quiet   *bool  `yaml:"quiet"`
	Workers *int   `yaml:"workers"`
}

// LoadFile overlays settings from a YAML file onto the config. Flag values
// set after the call still win over the file.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "reading %s: %v", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "parsing %s: %v", path, err)
	}

	if fc.Output != "" {
		c.OutputFile = fc.Output
	}
	if fc.Format != "" {
		c.Format = Format(fc.Format)
	}
	if fc.Checks != nil {
		c.Checks = *fc.Checks
	}
	if fc.Quiet != nil {
		c.Quiet = *fc.Quiet
	}
	if fc.Workers != nil {
		c.Workers = *fc.Workers
	}
	return nil
}
