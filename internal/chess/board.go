package chess

// Board represents a chess position with all state needed to generate and
// apply moves.
type Board struct {
	// The board squares, indexed [file][rank] with 0,0 == a1.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// The current move number.
	MoveNumber uint

	// Rook starting columns for the four castling options.
	// Zero means the right has been lost.
	WKingCastle  Col
	WQueenCastle Col
	BKingCastle  Col
	BQueenCastle Col

	// Keep track of where the two kings are for check detection.
	WKingCol  Col
	WKingRank Rank
	BKingCol  Col
	BKingRank Rank

	// Is an en passant capture possible? If so then EPCol and EPRank hold
	// the square on which it can be made.
	EnPassant bool
	EPCol     Col
	EPRank    Rank

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:     White,
		MoveNumber: 1,
	}
	for col := range b.Squares {
		for rank := range b.Squares[col] {
			b.Squares[col][rank] = Empty
		}
	}
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	for col := range b.Squares {
		for rank := range b.Squares[col] {
			b.Squares[col][rank] = Empty
		}
	}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][0] = W(backRank[col])
		b.Squares[col][1] = W(Pawn)
		b.Squares[col][6] = B(Pawn)
		b.Squares[col][7] = B(backRank[col])
	}

	b.WKingCol, b.WKingRank = 'e', '1'
	b.BKingCol, b.BKingRank = 'e', '8'

	b.WKingCastle = 'h'
	b.WQueenCastle = 'a'
	b.BKingCastle = 'h'
	b.BQueenCastle = 'a'

	b.ToMove = White
	b.MoveNumber = 1
	b.EnPassant = false
	b.HalfmoveClock = 0
}

// Get returns the piece at the given coordinates, or Off when the
// coordinates are not on the board.
func (b *Board) Get(col Col, rank Rank) Piece {
	if !OnBoard(col, rank) {
		return Off
	}
	return b.Squares[ColIndex(col)][RankIndex(rank)]
}

// Set places a piece at the given coordinates. Off-board coordinates are
// ignored.
func (b *Board) Set(col Col, rank Rank, piece Piece) {
	if OnBoard(col, rank) {
		b.Squares[ColIndex(col)][RankIndex(rank)] = piece
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// KingSquare returns the tracked king square for a colour.
func (b *Board) KingSquare(colour Colour) (Col, Rank) {
	if colour == White {
		return b.WKingCol, b.WKingRank
	}
	return b.BKingCol, b.BKingRank
}

// HasKingsideCastlingRights reports whether the colour can still castle
// kingside. This is a rights flag only; path and check conditions are the
// move generator's concern.
func (b *Board) HasKingsideCastlingRights(colour Colour) bool {
	if colour == White {
		return b.WKingCastle != 0
	}
	return b.BKingCastle != 0
}

// HasQueensideCastlingRights reports whether the colour can still castle
// queenside.
func (b *Board) HasQueensideCastlingRights(colour Colour) bool {
	if colour == White {
		return b.WQueenCastle != 0
	}
	return b.BQueenCastle != 0
}
