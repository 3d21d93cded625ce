package engine

import (
	stderrors "errors"
	"testing"

	"github.com/tmorten/descnote-go/internal/chess"
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

func TestApplyPawnPush(t *testing.T) {
	board := NewInitialBoard()

	if err := Apply(board, mustMove(t, "e2e4")); err != nil {
		t.Fatal(err)
	}

	if got := BoardToFEN(board); got != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Errorf("after e2e4: %s", got)
	}
}

func TestApplyCastleMovesRook(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if err := Apply(board, mustMove(t, "e1g1")); err != nil {
		t.Fatal(err)
	}

	if board.Get('g', '1') != chess.W(chess.King) {
		t.Error("king not on g1 after castling")
	}
	if board.Get('f', '1') != chess.W(chess.Rook) {
		t.Error("rook not on f1 after castling")
	}
	if board.Get('h', '1') != chess.Empty {
		t.Error("h1 not vacated after castling")
	}
	if board.HasKingsideCastlingRights(chess.White) {
		t.Error("castling rights survive castling")
	}
}

func TestApplyEnPassantRemovesPawn(t *testing.T) {
	board, err := NewBoardFromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatal(err)
	}

	if err := Apply(board, mustMove(t, "e5d6")); err != nil {
		t.Fatal(err)
	}

	if board.Get('d', '6') != chess.W(chess.Pawn) {
		t.Error("capturing pawn not on d6")
	}
	if board.Get('d', '5') != chess.Empty {
		t.Error("captured pawn still on d5")
	}
	if board.HalfmoveClock != 0 {
		t.Errorf("HalfmoveClock = %d, want 0", board.HalfmoveClock)
	}
}

func TestApplyPromotion(t *testing.T) {
	board, err := NewBoardFromFEN("8/4P3/8/8/8/4k3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if err := Apply(board, mustMove(t, "e7e8q")); err != nil {
		t.Fatal(err)
	}

	if board.Get('e', '8') != chess.W(chess.Queen) {
		t.Errorf("e8 = %v, want white queen", board.Get('e', '8'))
	}
}

func TestApplyRookMoveDropsRights(t *testing.T) {
	board, err := NewBoardFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	if err != nil {
		t.Fatal(err)
	}

	if err := Apply(board, mustMove(t, "h1h2")); err != nil {
		t.Fatal(err)
	}

	if board.HasKingsideCastlingRights(chess.White) {
		t.Error("kingside rights survive rook move")
	}
	if !board.HasQueensideCastlingRights(chess.White) {
		t.Error("queenside rights lost by kingside rook move")
	}
}

func TestApplyRejectsEmptyOrigin(t *testing.T) {
	board := NewInitialBoard()

	err := Apply(board, mustMove(t, "e4e5"))
	if !stderrors.Is(err, errors.ErrIllegalMove) {
		t.Errorf("Apply from empty square = %v, want ErrIllegalMove", err)
	}
}

func TestApplyMoveNumberAndClock(t *testing.T) {
	board := NewInitialBoard()

	for _, uci := range []string{"g1f3", "g8f6"} {
		if err := Apply(board, mustMove(t, uci)); err != nil {
			t.Fatal(err)
		}
	}

	if board.MoveNumber != 2 {
		t.Errorf("MoveNumber = %d, want 2", board.MoveNumber)
	}
	if board.HalfmoveClock != 2 {
		t.Errorf("HalfmoveClock = %d, want 2", board.HalfmoveClock)
	}
}
