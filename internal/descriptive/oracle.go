// Package descriptive translates English descriptive chess notation
// (P-K4, N-KB3, QR-K1, PxP, O-O, P-K8(Q)) into concrete moves, and formats
// concrete moves back as descriptive text. Every parsed move is selected
// from the legal moves of an oracle position rather than constructed from
// the notation alone, so the output is always legal in context.
package descriptive

import "github.com/tmorten/descnote-go/internal/chess"

// Position is the read-only board surface the formatter needs: square
// occupancy before the move is applied.
type Position interface {
	// PieceAt returns the piece type and colour on the given square. The
	// third result is false when the square is empty or off the board.
	PieceAt(col chess.Col, rank chess.Rank) (chess.Piece, chess.Colour, bool)
}

// Oracle is the position surface the parser consumes. The engine's
// Position type satisfies it; any other rules provider can be plugged in.
type Oracle interface {
	Position

	// LegalMoves enumerates every legal move for the side to move. The
	// parser only ever selects from this list (castling and promotion
	// included), never invents moves.
	LegalMoves() []chess.Move

	// SideToMove returns the colour whose move is being parsed. Rank
	// digits in descriptive notation are relative to this side.
	SideToMove() chess.Colour

	// HasKingsideCastlingRights reports whether the colour may still
	// castle kingside.
	HasKingsideCastlingRights(colour chess.Colour) bool

	// HasQueensideCastlingRights reports whether the colour may still
	// castle queenside.
	HasQueensideCastlingRights(colour chess.Colour) bool
}
