package descriptive

import (
	"strings"

	"github.com/tmorten/descnote-go/internal/chess"
)

// Format renders a move as descriptive notation, given the position
// before the move is applied. Ranks are written from the mover's
// perspective and files always by their full name, so the result parses
// back to the same move whenever the position allows only one reading.
// Pawn captures carry the origin file (KPxQ5); en passant captures land
// on an empty square and are written as plain pawn moves.
func Format(move chess.Move, pos Position) string {
	piece, colour, ok := pos.PieceAt(move.FromCol, move.FromRank)
	if !ok {
		return move.UCI()
	}

	if piece == chess.King && colDistance(move.FromCol, move.ToCol) == 2 {
		if move.ToCol == 'g' {
			return "O-O"
		}
		return "O-O-O"
	}

	_, _, captures := pos.PieceAt(move.ToCol, move.ToRank)

	var b strings.Builder
	switch {
	case captures && piece == chess.Pawn:
		b.WriteString(FileToken(move.FromCol))
		b.WriteString("Px")
	case captures:
		b.WriteByte(piece.Letter())
		b.WriteByte('x')
	default:
		b.WriteByte(piece.Letter())
		b.WriteByte('-')
	}
	b.WriteString(FileToken(move.ToCol))
	b.WriteByte(digitForSide(colour, move.ToRank))

	if move.IsPromotion() {
		b.WriteByte('(')
		b.WriteByte(move.Promotion.Letter())
		b.WriteByte(')')
	}
	return b.String()
}

// colDistance returns the absolute file distance between two columns.
func colDistance(a, b chess.Col) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
