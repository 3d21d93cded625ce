package engine

import "github.com/tmorten/descnote-go/internal/chess"

// Position adapts a Board to the oracle surface the descriptive package
// consumes: legal move enumeration plus read-only position queries. It does
// not own the board; callers mutate the board through Apply between parses.
type Position struct {
	board *chess.Board
}

// NewPosition wraps a board in a Position.
func NewPosition(board *chess.Board) *Position {
	return &Position{board: board}
}

// Board returns the underlying board.
func (p *Position) Board() *chess.Board {
	return p.board
}

// LegalMoves returns all legal moves for the side to move.
func (p *Position) LegalMoves() []chess.Move {
	return LegalMoves(p.board)
}

// PieceAt returns the piece type and colour on the given square. The third
// result is false when the square is empty or off the board.
func (p *Position) PieceAt(col chess.Col, rank chess.Rank) (chess.Piece, chess.Colour, bool) {
	piece := p.board.Get(col, rank)
	if piece == chess.Empty || piece == chess.Off {
		return chess.Empty, chess.White, false
	}
	return chess.ExtractPiece(piece), chess.ExtractColour(piece), true
}

// SideToMove returns the colour to move.
func (p *Position) SideToMove() chess.Colour {
	return p.board.ToMove
}

// HasKingsideCastlingRights reports whether the colour retains its kingside
// castling rights.
func (p *Position) HasKingsideCastlingRights(colour chess.Colour) bool {
	return p.board.HasKingsideCastlingRights(colour)
}

// HasQueensideCastlingRights reports whether the colour retains its
// queenside castling rights.
func (p *Position) HasQueensideCastlingRights(colour chess.Colour) bool {
	return p.board.HasQueensideCastlingRights(colour)
}
