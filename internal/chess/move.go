package chess

import "fmt"

// Move is a concrete move: origin square, destination square and an optional
// promotion piece. Moves are plain values; the rules engine supplies legal
// ones and the parser only selects among them.
type Move struct {
	FromCol  Col
	FromRank Rank
	ToCol    Col
	ToRank   Rank

	// Promotion is set only for pawn promotions; its zero value means none.
	Promotion Piece
}

// IsPromotion returns true if the move carries a promotion piece. Both
// Off (the zero value) and Empty mean no promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != Off && m.Promotion != Empty
}

// UCI returns the move in UCI coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) UCI() string {
	s := string([]byte{byte(m.FromCol), byte(m.FromRank), byte(m.ToCol), byte(m.ToRank)})
	if m.IsPromotion() {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// String returns the UCI form of the move.
func (m Move) String() string {
	return m.UCI()
}

// MoveFromUCI parses a move in UCI coordinate form.
func MoveFromUCI(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("bad UCI move %q", s)
	}
	m := Move{
		FromCol:  Col(s[0]),
		FromRank: Rank(s[1]),
		ToCol:    Col(s[2]),
		ToRank:   Rank(s[3]),
	}
	if !OnBoard(m.FromCol, m.FromRank) || !OnBoard(m.ToCol, m.ToRank) {
		return Move{}, fmt.Errorf("bad UCI move %q", s)
	}
	if len(s) == 5 {
		promo := PieceFromLetter(s[4] - 'a' + 'A')
		switch promo {
		case Knight, Bishop, Rook, Queen:
			m.Promotion = promo
		default:
			return Move{}, fmt.Errorf("bad promotion in UCI move %q", s)
		}
	}
	return m, nil
}
