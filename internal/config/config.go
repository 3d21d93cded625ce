// Package config holds the runtime configuration of the descnote CLI.
// Settings come from command-line flags, optionally overlaid on a YAML
// config file.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/tmorten/descnote-go/internal/errors"
)

// Format selects the notation the converter writes.
type Format string

const (
	// FormatUCI writes coordinate moves (e2e4, e7e8q).
	FormatUCI Format = "uci"
	// FormatLongAlg writes hyphenated long algebraic moves (Ng1-f3, e4xd5).
	FormatLongAlg Format = "halg"
	// FormatDescriptive writes descriptive notation back out (N-KB3).
	FormatDescriptive Format = "desc"
)

// Valid reports whether f is a known output format.
func (f Format) Valid() bool {
	switch f {
	case FormatUCI, FormatLongAlg, FormatDescriptive:
		return true
	}
	return false
}

// Config holds all settings of one converter run.
type Config struct {
	OutputFile string // "" writes to stdout
	Format     Format
	Checks     bool // recompute and append + / # markers
	Quiet      bool // suppress per-game progress logging
	Workers    int  // goroutines converting games in parallel

	// Streams, overridable in tests.
	LogWriter io.Writer
	Output    io.Writer
}

// NewDefault returns a Config with default settings.
func NewDefault() *Config {
	return &Config{
		Format:    FormatUCI,
		Workers:   runtime.NumCPU(),
		LogWriter: os.Stderr,
		Output:    os.Stdout,
	}
}

// Validate checks the configuration for values no run can proceed with.
func (c *Config) Validate() error {
	if !c.Format.Valid() {
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", c.Format)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// Logf writes a log line unless quiet mode is on.
func (c *Config) Logf(format string, args ...interface{}) {
	if c.Quiet || c.LogWriter == nil {
		return
	}
	fmt.Fprintf(c.LogWriter, format, args...)
}
