package main

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/tmorten/descnote-go/internal/config"
	"github.com/tmorten/descnote-go/internal/errors"
	"github.com/tmorten/descnote-go/internal/testutil"
	"github.com/tmorten/descnote-go/internal/transcript"
)

func testConfig(format config.Format) (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	cfg := config.NewDefault()
	cfg.Format = format
	cfg.Workers = 1
	cfg.Quiet = true
	cfg.Output = out
	cfg.LogWriter = logs
	return cfg, out, logs
}

func scholarsGame() *transcript.Game {
	return &transcript.Game{
		Tags: map[string]string{"Event": "Scholar's Mate"},
		Moves: []string{
			"P-K4", "P-K4", "B-QB4", "N-QB3",
			"Q-R5", "N-B3", "QxKB7",
		},
		Result:    "1-0",
		StartLine: 1,
	}
}

func TestConvertGameUCI(t *testing.T) {
	cfg, _, _ := testConfig(config.FormatUCI)
	p := &processor{cfg: cfg}

	text, err := p.convertGame("test", 1, scholarsGame())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, text,
		"1. e2e4 e7e5 2. f1c4 b8c6 3. d1h5 g8f6 4. h5f7 1-0")
}

func TestConvertGameLongAlgebraic(t *testing.T) {
	cfg, _, _ := testConfig(config.FormatLongAlg)
	p := &processor{cfg: cfg}

	text, err := p.convertGame("test", 1, scholarsGame())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, text,
		"1. e2-e4 e7-e5 2. Bf1-c4 Nb8-c6 3. Qd1-h5 Ng8-f6 4. Qh5xf7 1-0")
}

func TestConvertGameDescriptiveWithChecks(t *testing.T) {
	cfg, _, _ := testConfig(config.FormatDescriptive)
	cfg.Checks = true
	p := &processor{cfg: cfg}

	text, err := p.convertGame("test", 1, scholarsGame())
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, text,
		"1. P-K4 P-K4 2. B-QB4 N-QB3 3. Q-KR5 N-KB3 4. QxKB7# 1-0")
}

func TestConvertGameFromFENTag(t *testing.T) {
	cfg, _, _ := testConfig(config.FormatUCI)
	p := &processor{cfg: cfg}

	game := &transcript.Game{
		Tags:  map[string]string{"FEN": "4k3/8/8/8/8/8/8/4K2R w K - 0 1"},
		Moves: []string{"O-O"},
	}
	text, err := p.convertGame("test", 1, game)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, text, "1. e1g1 *")
}

func TestConvertGameFailureContext(t *testing.T) {
	cfg, _, _ := testConfig(config.FormatUCI)
	p := &processor{cfg: cfg}

	game := &transcript.Game{
		Moves:     []string{"P-K4", "N-Q5"},
		StartLine: 7,
	}
	_, err := p.convertGame("games.desc", 3, game)

	if !stderrors.Is(err, errors.ErrNoLegalCandidate) {
		t.Fatalf("convertGame = %v, want ErrNoLegalCandidate", err)
	}
	var gerr *errors.GameError
	if !stderrors.As(err, &gerr) {
		t.Fatalf("error type = %T, want *errors.GameError", err)
	}
	testutil.AssertEqual(t, gerr.GameNum, 3)
	testutil.AssertEqual(t, gerr.PlyNum, 2)
	testutil.AssertEqual(t, gerr.MoveText, "N-Q5")
	testutil.AssertEqual(t, gerr.File, "games.desc")
	testutil.AssertEqual(t, gerr.Line, 7)
}

func TestProcessReaderSkipsFailedGames(t *testing.T) {
	cfg, out, logs := testConfig(config.FormatUCI)
	p := &processor{cfg: cfg}

	input := `[Event "Good"]
1. P-K4 P-K4 *

[Event "Bad"]
1. N-Q5 *
`
	converted, failed := p.processReader("mixed.desc", strings.NewReader(input))

	testutil.AssertEqual(t, converted, 1)
	testutil.AssertEqual(t, failed, 1)
	testutil.AssertContains(t, out.String(), `[Event "Good"]`)
	testutil.AssertNotContains(t, out.String(), `[Event "Bad"]`)
	testutil.AssertContains(t, logs.String(), "mixed.desc")
	testutil.AssertContains(t, logs.String(), `"N-Q5"`)
}

func TestProcessReaderParallelKeepsOrder(t *testing.T) {
	cfg, out, _ := testConfig(config.FormatUCI)
	cfg.Workers = 4
	p := &processor{cfg: cfg}

	var input strings.Builder
	events := []string{"One", "Two", "Three", "Four", "Five", "Six"}
	for _, event := range events {
		input.WriteString("[Event \"" + event + "\"]\n1. P-K4 P-K4 *\n\n")
	}

	converted, failed := p.processReader("ordered.desc", strings.NewReader(input.String()))
	testutil.AssertEqual(t, converted, len(events))
	testutil.AssertEqual(t, failed, 0)

	text := out.String()
	last := -1
	for _, event := range events {
		idx := strings.Index(text, "[Event \""+event+"\"]")
		if idx < 0 {
			t.Fatalf("output missing game %q", event)
		}
		if idx < last {
			t.Errorf("game %q out of order", event)
		}
		last = idx
	}
}
