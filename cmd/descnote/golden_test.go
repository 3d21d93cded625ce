package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tmorten/descnote-go/internal/config"
	"github.com/tmorten/descnote-go/internal/testutil"
)

const goldenUCI = `[Event "Scholar's Mate"]
[White "Greco"]
[Black "NN"]

1. e2e4 e7e5 2. f1c4 b8c6 3. d1h5 g8f6 4. h5f7 1-0

[Event "Second"]

1. d2d4 d7d5 2. g1f3 g8f6 1/2-1/2

`

const goldenDescChecks = `[Event "Scholar's Mate"]
[White "Greco"]
[Black "NN"]

1. P-K4 P-K4 2. B-QB4 N-QB3 3. Q-KR5 N-KB3 4. QxKB7# 1-0

[Event "Second"]

1. P-Q4 P-Q4 2. N-KB3 N-KB3 1/2-1/2

`

func goldenRun(t *testing.T, cfg *config.Config) string {
	t.Helper()

	file, err := os.Open(filepath.Join("testdata", "scholars.desc"))
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	out := &bytes.Buffer{}
	cfg.Output = out
	cfg.LogWriter = &bytes.Buffer{}
	cfg.Quiet = true

	p := &processor{cfg: cfg}
	converted, failed := p.processReader("scholars.desc", file)
	testutil.AssertEqual(t, converted, 2)
	testutil.AssertEqual(t, failed, 0)
	return out.String()
}

func TestGoldenUCI(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Format = config.FormatUCI
	cfg.Workers = 1

	testutil.AssertEqual(t, goldenRun(t, cfg), goldenUCI)
}

func TestGoldenDescriptiveRoundTrip(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Format = config.FormatDescriptive
	cfg.Checks = true
	cfg.Workers = 1

	testutil.AssertEqual(t, goldenRun(t, cfg), goldenDescChecks)
}

func TestGoldenParallelMatchesSequential(t *testing.T) {
	sequential := config.NewDefault()
	sequential.Format = config.FormatUCI
	sequential.Workers = 1

	parallel := config.NewDefault()
	parallel.Format = config.FormatUCI
	parallel.Workers = 4

	testutil.AssertEqual(t, goldenRun(t, parallel), goldenRun(t, sequential))
}
