package engine

import "github.com/tmorten/descnote-go/internal/chess"

// knightOffsets are the eight knight move deltas.
var knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

// kingOffsets are the eight king move deltas.
var kingOffsets = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

// diagonalDirs and straightDirs are the sliding piece directions.
var (
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingCol, kingRank := board.KingSquare(colour)

	// If the king position is not tracked, search for it.
	if kingCol == 0 || kingRank == 0 {
		kingCol, kingRank = findKing(board, colour)
		if kingCol == 0 {
			return false
		}
	}

	return IsSquareAttacked(board, kingCol, kingRank, colour.Opposite())
}

// findKing finds the king of the given colour on the board.
func findKing(board *chess.Board, colour chess.Colour) (chess.Col, chess.Rank) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) == king {
				return col, rank
			}
		}
	}
	return 0, 0
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, col chess.Col, rank chess.Rank, byColour chess.Colour) bool {
	// Pawn attacks.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	var pawnDir int
	if byColour == chess.White {
		pawnDir = -1 // White pawns attack from below
	} else {
		pawnDir = 1 // Black pawns attack from above
	}
	pawnRank := chess.Rank(int(rank) + pawnDir)
	if pawnRank >= '1' && pawnRank <= '8' {
		if col > 'a' && board.Get(col-1, pawnRank) == pawn {
			return true
		}
		if col < 'h' && board.Get(col+1, pawnRank) == pawn {
			return true
		}
	}

	// Knight attacks.
	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if board.Get(c, r) == knight {
			return true
		}
	}

	// King attacks.
	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		c := chess.Col(int(col) + off[0])
		r := chess.Rank(int(rank) + off[1])
		if board.Get(c, r) == king {
			return true
		}
	}

	// Sliding pieces along diagonals.
	bishop := chess.MakeColouredPiece(byColour, chess.Bishop)
	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	for _, dir := range diagonalDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for chess.OnBoard(c, r) {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				if piece == bishop || piece == queen {
					return true
				}
				break // Blocked
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	// Sliding pieces along straight lines.
	rook := chess.MakeColouredPiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		c := chess.Col(int(col) + dir[0])
		r := chess.Rank(int(rank) + dir[1])
		for chess.OnBoard(c, r) {
			piece := board.Get(c, r)
			if piece != chess.Empty {
				if piece == rook || piece == queen {
					return true
				}
				break // Blocked
			}
			c = chess.Col(int(c) + dir[0])
			r = chess.Rank(int(r) + dir[1])
		}
	}

	return false
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && len(LegalMoves(board)) == 0
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && len(LegalMoves(board)) == 0
}
