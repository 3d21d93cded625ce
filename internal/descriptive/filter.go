package descriptive

import (
	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/errors"
)

// square is a concrete board square.
type square struct {
	col  chess.Col
	rank chess.Rank
}

// sideQualifier narrows a piece or origin to one wing of the board.
type sideQualifier int

const (
	queenside sideQualifier = iota // origin files a-d
	kingside                       // origin files e-h
)

// matches reports whether an origin column lies on the qualifier's wing.
func (q sideQualifier) matches(col chess.Col) bool {
	if q == queenside {
		return chess.ColIndex(col) <= 3
	}
	return chess.ColIndex(col) >= 4
}

// filterByDestination returns the oracle's legal moves made by the given
// piece type to any of the target squares. originCols, when non-empty,
// additionally restricts the origin file.
func filterByDestination(oracle Oracle, kind chess.Piece, targets []square, originCols []chess.Col) []chess.Move {
	var out []chess.Move
	for _, m := range oracle.LegalMoves() {
		piece, _, ok := oracle.PieceAt(m.FromCol, m.FromRank)
		if !ok || piece != kind {
			continue
		}
		if !containsSquare(targets, m.ToCol, m.ToRank) {
			continue
		}
		if len(originCols) > 0 && !containsCol(originCols, m.FromCol) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// filterByCapturedPiece returns the oracle's legal moves in which the
// given piece type captures a piece of the captured type. captured ==
// chess.Empty means any occupied destination. En passant destinations are
// empty squares and so never match; descriptive sources write en passant
// with its destination square instead.
func filterByCapturedPiece(oracle Oracle, kind, captured chess.Piece, originCols []chess.Col) []chess.Move {
	var out []chess.Move
	for _, m := range oracle.LegalMoves() {
		piece, _, ok := oracle.PieceAt(m.FromCol, m.FromRank)
		if !ok || piece != kind {
			continue
		}
		target, _, occupied := oracle.PieceAt(m.ToCol, m.ToRank)
		if !occupied {
			continue
		}
		if captured != chess.Empty && target != captured {
			continue
		}
		if len(originCols) > 0 && !containsCol(originCols, m.FromCol) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// disambiguate reduces a non-empty candidate set to a single move. Three
// rules apply in order: a side qualifier that exactly one origin file
// satisfies; a capture marker when exactly one candidate actually
// captures; and finally the first candidate in oracle enumeration order.
// In strict mode the positional fallback is replaced by an
// ErrUnresolvedAmbiguity failure.
func disambiguate(oracle Oracle, cands []chess.Move, qualifier *sideQualifier, isCapture, strict bool) (chess.Move, error) {
	if len(cands) == 1 {
		return cands[0], nil
	}

	if qualifier != nil {
		var matched []chess.Move
		for _, m := range cands {
			if qualifier.matches(m.FromCol) {
				matched = append(matched, m)
			}
		}
		if len(matched) == 1 {
			return matched[0], nil
		}
		if len(matched) > 1 {
			cands = matched
		}
	}

	if isCapture {
		var capturing []chess.Move
		for _, m := range cands {
			if _, _, occupied := oracle.PieceAt(m.ToCol, m.ToRank); occupied {
				capturing = append(capturing, m)
			}
		}
		if len(capturing) == 1 {
			return capturing[0], nil
		}
		if len(capturing) > 1 {
			cands = capturing
		}
	}

	if strict {
		return chess.Move{}, errors.ErrUnresolvedAmbiguity
	}
	// Historical game scores are sometimes genuinely underspecified; the
	// oracle's enumeration order decides.
	return cands[0], nil
}

func containsSquare(squares []square, col chess.Col, rank chess.Rank) bool {
	for _, sq := range squares {
		if sq.col == col && sq.rank == rank {
			return true
		}
	}
	return false
}

func containsCol(cols []chess.Col, col chess.Col) bool {
	for _, c := range cols {
		if c == col {
			return true
		}
	}
	return false
}
