package testutil

import (
	"testing"

	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/engine"
)

// MustBoard sets up a board from a FEN string, aborting the test on
// failure.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("bad FEN %q: %v", fen, err)
	}
	return board
}

// MustPosition sets up an oracle position from a FEN string.
func MustPosition(t *testing.T, fen string) *engine.Position {
	t.Helper()
	return engine.NewPosition(MustBoard(t, fen))
}

// MustMove converts a coordinate move string, aborting the test on
// failure.
func MustMove(t *testing.T, uci string) chess.Move {
	t.Helper()
	move, err := chess.MoveFromUCI(uci)
	if err != nil {
		t.Fatalf("bad move %q: %v", uci, err)
	}
	return move
}
