package descriptive

import (
	stderrors "errors"
	"testing"

	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/engine"
	"github.com/tmorten/descnote-go/internal/errors"
)

func mustMove(t *testing.T, uci string) chess.Move {
	t.Helper()
	m, err := chess.MoveFromUCI(uci)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"white pawn push", engine.InitialFEN, "e2e4", "P-K4"},
		{"knight development", engine.InitialFEN, "g1f3", "N-KB3"},
		{
			"black pawn push",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			"e7e5", "P-K4",
		},
		{
			"pawn capture carries origin file",
			"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			"e4d5", "KPxQ5",
		},
		{
			"piece capture",
			"4k3/8/8/3n4/8/8/8/3R1K2 w - - 0 1",
			"d1d5", "RxQ5",
		},
		{
			"kingside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"e1g1", "O-O",
		},
		{
			"queenside castle",
			"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			"e8c8", "O-O-O",
		},
		{
			"promotion",
			"3n4/4P3/8/8/8/4k3/8/4K3 w - - 0 1",
			"e7e8q", "P-K8(Q)",
		},
		{
			"capturing promotion",
			"3n4/4P3/8/8/8/4k3/8/4K3 w - - 0 1",
			"e7d8n", "KPxQ8(N)",
		},
		{
			"en passant lands on an empty square",
			"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			"e5d6", "P-Q6",
		},
		{
			"black rank perspective",
			"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			"g8f6", "N-KB3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := posFromFEN(t, tt.fen)
			move := mustMove(t, tt.uci)
			if got := Format(move, pos); got != tt.want {
				t.Errorf("Format(%s) = %q, want %q", tt.uci, got, tt.want)
			}
		})
	}
}

// Formatting a legal move and parsing the result strictly must return the
// same move whenever the notation admits only one reading. Genuinely
// ambiguous renderings (two identical pieces reaching the same square)
// are reported as such and skipped.
func TestFormatParseLockstep(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r1bqk2r/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQK2R w KQkq - 4 5",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"3n4/4P3/8/8/8/4k3/8/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		pos := posFromFEN(t, fen)
		for _, move := range pos.LegalMoves() {
			text := Format(move, pos)

			parsed, err := ParseStrict(text, pos)
			if stderrors.Is(err, errors.ErrUnresolvedAmbiguity) {
				continue
			}
			if err != nil {
				t.Errorf("%s: ParseStrict(Format(%s) = %q): %v", fen, move.UCI(), text, err)
				continue
			}
			if parsed != move {
				t.Errorf("%s: %q parsed back to %s, want %s", fen, text, parsed.UCI(), move.UCI())
			}
		}
	}
}
