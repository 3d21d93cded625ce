package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmorten/descnote-go/internal/errors"
	"github.com/tmorten/descnote-go/internal/testutil"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	testutil.AssertEqual(t, cfg.Format, FormatUCI)
	testutil.AssertTrue(t, cfg.Workers >= 1)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"desc format", func(c *Config) { c.Format = FormatDescriptive }, true},
		{"unknown format", func(c *Config) { c.Format = "pgn" }, false},
		{"zero workers", func(c *Config) { c.Workers = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				testutil.AssertNoError(t, err)
			} else if !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descnote.yaml")
	data := "format: halg\nchecks: true\nworkers: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefault()
	testutil.AssertNoError(t, cfg.LoadFile(path))

	testutil.AssertEqual(t, cfg.Format, FormatLongAlg)
	testutil.AssertTrue(t, cfg.Checks)
	testutil.AssertEqual(t, cfg.Workers, 2)
	// Unmentioned settings keep their defaults.
	testutil.AssertFalse(t, cfg.Quiet)
	testutil.AssertEqual(t, cfg.OutputFile, "")
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewDefault()

	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("LoadFile(missing) = %v, want ErrInvalidConfig", err)
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("format: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.LoadFile(path); !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("LoadFile(bad) = %v, want ErrInvalidConfig", err)
	}
}

func TestLogfRespectsQuiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewDefault()
	cfg.LogWriter = &buf

	cfg.Logf("converted %d games\n", 3)
	testutil.AssertContains(t, buf.String(), "converted 3 games")

	buf.Reset()
	cfg.Quiet = true
	cfg.Logf("should not appear\n")
	testutil.AssertEqual(t, buf.String(), "")
}
