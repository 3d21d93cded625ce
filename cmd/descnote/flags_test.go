package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmorten/descnote-go/internal/config"
	"github.com/tmorten/descnote-go/internal/testutil"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, opts.cfg.Format, config.FormatUCI)
	testutil.AssertFalse(t, opts.cfg.Checks)
	testutil.AssertFalse(t, opts.version)
	testutil.AssertEqual(t, len(opts.files), 0)
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{"-W", "desc", "-checks", "-quiet", "-workers", "2", "-o", "out.txt", "a.desc", "b.desc"})
	testutil.AssertNoError(t, err)

	cfg := opts.cfg
	testutil.AssertEqual(t, cfg.Format, config.FormatDescriptive)
	testutil.AssertTrue(t, cfg.Checks)
	testutil.AssertTrue(t, cfg.Quiet)
	testutil.AssertEqual(t, cfg.Workers, 2)
	testutil.AssertEqual(t, cfg.OutputFile, "out.txt")
	testutil.AssertEqual(t, opts.files, []string{"a.desc", "b.desc"})
}

func TestParseFlagsConfigFilePrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "descnote.yaml")
	if err := os.WriteFile(path, []byte("format: desc\nworkers: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Explicit flags win over the config file; file settings fill the rest.
	opts, err := parseFlags([]string{"-c", path, "-W", "halg"})
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, opts.cfg.Format, config.FormatLongAlg)
	testutil.AssertEqual(t, opts.cfg.Workers, 3)
}

func TestParseFlagsVersion(t *testing.T) {
	opts, err := parseFlags([]string{"-version"})
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, opts.version)
}

func TestParseFlagsBadFlag(t *testing.T) {
	if _, err := parseFlags([]string{"-nosuch"}); err == nil {
		t.Error("parseFlags accepted an unknown flag")
	}
}
