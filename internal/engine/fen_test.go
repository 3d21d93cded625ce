package engine

import (
	stderrors "errors"
	"testing"

	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/errors"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"8/8/8/8/8/4k3/8/4K2R w K - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 12 40",
	}

	for _, fen := range tests {
		board, err := NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
		}
		if got := BoardToFEN(board); got != fen {
			t.Errorf("BoardToFEN = %q, want %q", got, fen)
		}
	}
}

func TestNewBoardFromFENRejectsBadInput(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
	}

	for _, fen := range tests {
		if _, err := NewBoardFromFEN(fen); !stderrors.Is(err, errors.ErrInvalidFEN) {
			t.Errorf("NewBoardFromFEN(%q) = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()

	if board.ToMove != chess.White {
		t.Errorf("ToMove = %v, want White", board.ToMove)
	}
	if board.Get('e', '1') != chess.W(chess.King) {
		t.Error("expected white king on e1")
	}
	if board.WKingCol != 'e' || board.WKingRank != '1' {
		t.Errorf("white king tracked at %c%c, want e1", board.WKingCol, board.WKingRank)
	}
	if board.Get('e', '8') != chess.B(chess.King) {
		t.Error("expected black king on e8")
	}
}

func TestFENEnPassantField(t *testing.T) {
	board, err := NewBoardFromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if !board.EnPassant || board.EPCol != 'e' || board.EPRank != '3' {
		t.Errorf("en passant square = %v %c%c, want e3", board.EnPassant, board.EPCol, board.EPRank)
	}
}
