package engine

import (
	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/errors"
)

// Apply applies a move to the board and updates all board state: castling
// rights, en passant square, halfmove clock and move number. The move is
// expected to come from LegalMoves; only basic occupancy is validated here.
func Apply(board *chess.Board, move chess.Move) error {
	colour := board.ToMove
	piece := board.Get(move.FromCol, move.FromRank)
	if piece == chess.Empty || piece == chess.Off {
		return errors.Wrapf(errors.ErrIllegalMove, "no piece on %c%c", move.FromCol, move.FromRank)
	}
	if chess.ExtractColour(piece) != colour {
		return errors.Wrapf(errors.ErrIllegalMove, "piece on %c%c belongs to %v", move.FromCol, move.FromRank, colour.Opposite())
	}

	pieceType := chess.ExtractPiece(piece)
	captured := board.Get(move.ToCol, move.ToRank)

	// Castling: a king moving two files.
	if pieceType == chess.King && colDistance(move.FromCol, move.ToCol) == 2 {
		applyCastle(board, move.ToCol == 'g')
		return nil
	}

	// En passant: remove the captured pawn from its actual square.
	enPassantCapture := pieceType == chess.Pawn && board.EnPassant &&
		move.ToCol == board.EPCol && move.ToRank == board.EPRank
	if enPassantCapture {
		capturedRank := chess.Rank(int(move.ToRank) - chess.ColourOffset(colour))
		board.Set(move.ToCol, capturedRank, chess.Empty)
	}

	board.Set(move.FromCol, move.FromRank, chess.Empty)
	if move.IsPromotion() {
		board.Set(move.ToCol, move.ToRank, chess.MakeColouredPiece(colour, move.Promotion))
	} else {
		board.Set(move.ToCol, move.ToRank, piece)
	}

	// King position and castling rights bookkeeping.
	if pieceType == chess.King {
		if colour == chess.White {
			board.WKingCol, board.WKingRank = move.ToCol, move.ToRank
			board.WKingCastle, board.WQueenCastle = 0, 0
		} else {
			board.BKingCol, board.BKingRank = move.ToCol, move.ToRank
			board.BKingCastle, board.BQueenCastle = 0, 0
		}
	}
	if pieceType == chess.Rook {
		updateCastlingRightsForRook(board, colour, move.FromCol, move.FromRank)
	}
	if captured != chess.Empty && chess.ExtractPiece(captured) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(captured), move.ToCol, move.ToRank)
	}

	// En passant square on a double pawn push.
	board.EnPassant = false
	if pieceType == chess.Pawn {
		if colour == chess.White && move.FromRank == '2' && move.ToRank == '4' {
			board.EnPassant = true
			board.EPCol = move.ToCol
			board.EPRank = '3'
		} else if colour == chess.Black && move.FromRank == '7' && move.ToRank == '5' {
			board.EnPassant = true
			board.EPCol = move.ToCol
			board.EPRank = '6'
		}
	}

	if pieceType == chess.Pawn || captured != chess.Empty || enPassantCapture {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return nil
}

// applyCastle applies a castling move for the side to move.
func applyCastle(board *chess.Board, kingside bool) {
	colour := board.ToMove
	var rank chess.Rank
	var kingFromCol, kingToCol, rookFromCol, rookToCol chess.Col

	if colour == chess.White {
		rank = '1'
		kingFromCol = board.WKingCol
		if kingside {
			kingToCol, rookFromCol, rookToCol = 'g', board.WKingCastle, 'f'
		} else {
			kingToCol, rookFromCol, rookToCol = 'c', board.WQueenCastle, 'd'
		}
	} else {
		rank = '8'
		kingFromCol = board.BKingCol
		if kingside {
			kingToCol, rookFromCol, rookToCol = 'g', board.BKingCastle, 'f'
		} else {
			kingToCol, rookFromCol, rookToCol = 'c', board.BQueenCastle, 'd'
		}
	}

	king := board.Get(kingFromCol, rank)
	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)

	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(rookToCol, rank, rook)

	if colour == chess.White {
		board.WKingCol = kingToCol
		board.WKingCastle, board.WQueenCastle = 0, 0
	} else {
		board.BKingCol = kingToCol
		board.BKingCastle, board.BQueenCastle = 0, 0
	}

	board.EnPassant = false
	board.HalfmoveClock++
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}

// updateCastlingRightsForRook removes castling rights when a rook moves or
// is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}

// colDistance returns the absolute file distance between two columns.
func colDistance(a, b chess.Col) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
