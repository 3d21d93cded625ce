package output

import (
	"strings"

	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/config"
	"github.com/tmorten/descnote-go/internal/descriptive"
)

// RenderMove renders a legal move in the configured notation. pos is the
// position before the move is applied; long algebraic and descriptive
// renderings need it to tell captures from quiet moves.
func RenderMove(format config.Format, move chess.Move, pos descriptive.Position) string {
	switch format {
	case config.FormatDescriptive:
		return descriptive.Format(move, pos)
	case config.FormatLongAlg:
		return longAlgebraic(move, pos)
	default:
		return move.UCI()
	}
}

// longAlgebraic renders a move in hyphenated long algebraic notation:
// Ng1-f3, e4xd5, e7-e8=Q, O-O.
func longAlgebraic(move chess.Move, pos descriptive.Position) string {
	piece, _, ok := pos.PieceAt(move.FromCol, move.FromRank)
	if !ok {
		return move.UCI()
	}

	if piece == chess.King && colDistance(move.FromCol, move.ToCol) == 2 {
		if move.ToCol == 'g' {
			return "O-O"
		}
		return "O-O-O"
	}

	var b strings.Builder
	if piece != chess.Pawn {
		b.WriteByte(piece.Letter())
	}
	b.WriteByte(byte(move.FromCol))
	b.WriteByte(byte(move.FromRank))

	// A pawn changing file always captures, en passant included.
	_, _, occupied := pos.PieceAt(move.ToCol, move.ToRank)
	if occupied || (piece == chess.Pawn && move.FromCol != move.ToCol) {
		b.WriteByte('x')
	} else {
		b.WriteByte('-')
	}
	b.WriteByte(byte(move.ToCol))
	b.WriteByte(byte(move.ToRank))

	if move.IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(move.Promotion.Letter())
	}
	return b.String()
}

func colDistance(a, b chess.Col) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
