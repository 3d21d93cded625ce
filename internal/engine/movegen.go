package engine

import "github.com/tmorten/descnote-go/internal/chess"

// promotionPieces is the order in which promotion moves are generated.
var promotionPieces = []chess.Piece{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// LegalMoves returns all legal moves for the side to move. Moves are
// enumerated file by file from 'a' and rank by rank from '1'; castling
// moves come last. Promotions expand into one move per promotion piece.
func LegalMoves(board *chess.Board) []chess.Move {
	colour := board.ToMove
	var moves []chess.Move

	for col := chess.Col('a'); col <= 'h'; col++ {
		for rank := chess.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == chess.Empty || piece == chess.Off {
				continue
			}
			if chess.ExtractColour(piece) != colour {
				continue
			}

			switch chess.ExtractPiece(piece) {
			case chess.Pawn:
				moves = appendPawnMoves(moves, board, col, rank, colour)
			case chess.Knight:
				moves = appendStepMoves(moves, board, col, rank, colour, knightOffsets)
			case chess.King:
				moves = appendStepMoves(moves, board, col, rank, colour, kingOffsets)
			case chess.Bishop:
				moves = appendSlidingMoves(moves, board, col, rank, colour, diagonalDirs)
			case chess.Rook:
				moves = appendSlidingMoves(moves, board, col, rank, colour, straightDirs)
			case chess.Queen:
				moves = appendSlidingMoves(moves, board, col, rank, colour, diagonalDirs)
				moves = appendSlidingMoves(moves, board, col, rank, colour, straightDirs)
			}
		}
	}

	moves = appendCastlingMoves(moves, board, colour)
	return moves
}

// appendPawnMoves appends all legal moves for the pawn on the given square.
func appendPawnMoves(moves []chess.Move, board *chess.Board, fromCol chess.Col, fromRank chess.Rank, colour chess.Colour) []chess.Move {
	dir := chess.ColourOffset(colour)

	// Single push, and double push from the starting rank.
	toRank := chess.Rank(int(fromRank) + dir)
	if chess.OnBoard(fromCol, toRank) && board.Get(fromCol, toRank) == chess.Empty {
		moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, fromCol, toRank)

		startRank := chess.Rank('2')
		if colour == chess.Black {
			startRank = '7'
		}
		if fromRank == startRank {
			toRank2 := chess.Rank(int(fromRank) + 2*dir)
			if board.Get(fromCol, toRank2) == chess.Empty {
				moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, fromCol, toRank2)
			}
		}
	}

	// Captures, including en passant.
	for dc := -1; dc <= 1; dc += 2 {
		toCol := chess.Col(int(fromCol) + dc)
		toRank := chess.Rank(int(fromRank) + dir)
		if !chess.OnBoard(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		if target != chess.Empty && chess.ExtractColour(target) != colour {
			moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, toCol, toRank)
		}
		if board.EnPassant && toCol == board.EPCol && toRank == board.EPRank {
			moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, toCol, toRank)
		}
	}

	return moves
}

// appendStepMoves appends legal moves for pieces with a fixed move pattern
// (knight and king).
func appendStepMoves(moves []chess.Move, board *chess.Board, fromCol chess.Col, fromRank chess.Rank, colour chess.Colour, offsets [][2]int) []chess.Move {
	for _, off := range offsets {
		toCol := chess.Col(int(fromCol) + off[0])
		toRank := chess.Rank(int(fromRank) + off[1])
		if !chess.OnBoard(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		if target == chess.Empty || chess.ExtractColour(target) != colour {
			moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, toCol, toRank)
		}
	}
	return moves
}

// appendSlidingMoves appends legal moves for sliding pieces along the
// given directions.
func appendSlidingMoves(moves []chess.Move, board *chess.Board, fromCol chess.Col, fromRank chess.Rank, colour chess.Colour, dirs [][2]int) []chess.Move {
	for _, dir := range dirs {
		toCol := chess.Col(int(fromCol) + dir[0])
		toRank := chess.Rank(int(fromRank) + dir[1])
		for chess.OnBoard(toCol, toRank) {
			target := board.Get(toCol, toRank)
			if target != chess.Empty {
				if chess.ExtractColour(target) != colour {
					moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, toCol, toRank)
				}
				break // Blocked
			}
			moves = appendIfKingSafe(moves, board, colour, fromCol, fromRank, toCol, toRank)
			toCol = chess.Col(int(toCol) + dir[0])
			toRank = chess.Rank(int(toRank) + dir[1])
		}
	}
	return moves
}

// appendCastlingMoves appends castling moves when the rights are present,
// the path is empty, and the king does not cross an attacked square.
func appendCastlingMoves(moves []chess.Move, board *chess.Board, colour chess.Colour) []chess.Move {
	rank := chess.Rank('1')
	if colour == chess.Black {
		rank = '8'
	}

	kingCol, kingRank := board.KingSquare(colour)
	if kingCol != 'e' || kingRank != rank {
		return moves
	}
	if IsInCheck(board, colour) {
		return moves
	}

	enemy := colour.Opposite()

	if board.HasKingsideCastlingRights(colour) &&
		board.Get('f', rank) == chess.Empty && board.Get('g', rank) == chess.Empty &&
		!IsSquareAttacked(board, 'f', rank, enemy) && !IsSquareAttacked(board, 'g', rank, enemy) {
		moves = append(moves, chess.Move{FromCol: 'e', FromRank: rank, ToCol: 'g', ToRank: rank})
	}

	if board.HasQueensideCastlingRights(colour) &&
		board.Get('b', rank) == chess.Empty && board.Get('c', rank) == chess.Empty && board.Get('d', rank) == chess.Empty &&
		!IsSquareAttacked(board, 'c', rank, enemy) && !IsSquareAttacked(board, 'd', rank, enemy) {
		moves = append(moves, chess.Move{FromCol: 'e', FromRank: rank, ToCol: 'c', ToRank: rank})
	}

	return moves
}

// appendIfKingSafe appends the move unless it would leave the mover's own
// king in check. Pawn moves reaching the last rank expand into one move per
// promotion piece.
func appendIfKingSafe(moves []chess.Move, board *chess.Board, colour chess.Colour, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) []chess.Move {
	if !leavesKingSafe(board, colour, fromCol, fromRank, toCol, toRank) {
		return moves
	}

	move := chess.Move{FromCol: fromCol, FromRank: fromRank, ToCol: toCol, ToRank: toRank}

	piece := chess.ExtractPiece(board.Get(fromCol, fromRank))
	lastRank := chess.Rank('8')
	if colour == chess.Black {
		lastRank = '1'
	}
	if piece == chess.Pawn && toRank == lastRank {
		for _, promo := range promotionPieces {
			move.Promotion = promo
			moves = append(moves, move)
		}
		return moves
	}

	return append(moves, move)
}

// leavesKingSafe makes the move on a copied board and checks that it does
// not leave the mover's own king in check. En passant removes the captured
// pawn before the check test.
func leavesKingSafe(board *chess.Board, colour chess.Colour, fromCol chess.Col, fromRank chess.Rank, toCol chess.Col, toRank chess.Rank) bool {
	testBoard := board.Copy()

	piece := testBoard.Get(fromCol, fromRank)
	if chess.ExtractPiece(piece) == chess.Pawn &&
		testBoard.EnPassant && toCol == testBoard.EPCol && toRank == testBoard.EPRank {
		capturedRank := chess.Rank(int(toRank) - chess.ColourOffset(colour))
		testBoard.Set(toCol, capturedRank, chess.Empty)
	}

	testBoard.Set(fromCol, fromRank, chess.Empty)
	testBoard.Set(toCol, toRank, piece)

	if chess.ExtractPiece(piece) == chess.King {
		if colour == chess.White {
			testBoard.WKingCol = toCol
			testBoard.WKingRank = toRank
		} else {
			testBoard.BKingCol = toCol
			testBoard.BKingRank = toRank
		}
	}

	return !IsInCheck(testBoard, colour)
}
