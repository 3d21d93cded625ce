package descriptive

import "github.com/tmorten/descnote-go/internal/chess"

// fileTokens maps the eight full descriptive file names to board columns.
// Two-letter names come first so that matching is longest-first: KB must
// win over K when both could match.
var fileTokens = []struct {
	name string
	col  chess.Col
}{
	{"QR", 'a'},
	{"QN", 'b'},
	{"QB", 'c'},
	{"KR", 'h'},
	{"KN", 'g'},
	{"KB", 'f'},
	{"Q", 'd'},
	{"K", 'e'},
}

// ambiguousFiles maps the abbreviated file letters to both columns they
// can denote. R alone can be the queen's rook file or the king's rook
// file; likewise N and B.
var ambiguousFiles = map[byte][2]chess.Col{
	'R': {'a', 'h'},
	'N': {'b', 'g'},
	'B': {'c', 'f'},
}

// FileToken returns the full descriptive name of a column ("QR" for a,
// "K" for e). Formatting always uses the unabbreviated name.
func FileToken(col chess.Col) string {
	for _, ft := range fileTokens {
		if ft.col == col {
			return ft.name
		}
	}
	return "?"
}

// rankForSide converts a perspective-relative rank digit to an absolute
// rank. Each player counts ranks from their own back rank, so White's 4
// is rank 4 but Black's 4 is rank 5.
func rankForSide(side chess.Colour, digit byte) chess.Rank {
	if side == chess.White {
		return chess.Rank(digit)
	}
	return chess.Rank('0' + 9 - (digit - '0'))
}

// digitForSide is the inverse of rankForSide: the rank digit the given
// side would write for an absolute rank.
func digitForSide(side chess.Colour, rank chess.Rank) byte {
	if side == chess.White {
		return byte(rank)
	}
	return '0' + 9 - byte(rank-'0')
}

// matchFile consumes a file name at the current position and returns the
// candidate columns: one for a full name, two for the abbreviated letters
// R, N and B. Full names are tried first and longest-first.
func (s *scanner) matchFile() ([]chess.Col, bool) {
	for _, ft := range fileTokens {
		if s.hasLetters(ft.name) {
			s.pos += len(ft.name)
			return []chess.Col{ft.col}, true
		}
	}
	if t, ok := s.peek(); ok && t.kind == tokenLetter {
		if pair, ok := ambiguousFiles[t.ch]; ok {
			s.pos++
			return []chess.Col{pair[0], pair[1]}, true
		}
	}
	return nil, false
}

// matchFullFile is matchFile restricted to the eight unabbreviated names.
// Promotion squares must be written unambiguously.
func (s *scanner) matchFullFile() (chess.Col, bool) {
	for _, ft := range fileTokens {
		if s.hasLetters(ft.name) {
			s.pos += len(ft.name)
			return ft.col, true
		}
	}
	return 0, false
}

// hasLetters reports whether the tokens at the current position spell the
// given letters.
func (s *scanner) hasLetters(name string) bool {
	for i := 0; i < len(name); i++ {
		t, ok := s.peekAt(i)
		if !ok || t.kind != tokenLetter || t.ch != name[i] {
			return false
		}
	}
	return true
}
