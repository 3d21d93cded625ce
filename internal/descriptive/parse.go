package descriptive

import (
	"strings"

	"github.com/tmorten/descnote-go/internal/chess"
	"github.com/tmorten/descnote-go/internal/errors"
)

// annotationMarkers open the trailing decorations that carry no move
// information: check and mate marks and en passant tags. Everything from
// the first marker onward is discarded. None of the marker letters occur
// in the move grammar itself, so scanning for substrings is safe.
var annotationMarkers = []string{"CH", "MATE", "E.P", "EP", "+", "#"}

// Normalize uppercases move text, trims whitespace and strips check, mate
// and en passant annotations.
func Normalize(text string) string {
	s := strings.ToUpper(strings.TrimSpace(text))
	for _, marker := range annotationMarkers {
		if i := strings.Index(s, marker); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

// Parse resolves descriptive move text against the oracle position and
// returns the concrete move it denotes. When the notation is genuinely
// underspecified the first matching move in the oracle's enumeration
// order is chosen.
func Parse(text string, oracle Oracle) (chess.Move, error) {
	return parse(text, oracle, false)
}

// ParseStrict is Parse, except that ambiguity the notation itself cannot
// resolve fails with ErrUnresolvedAmbiguity instead of falling back to
// enumeration order.
func ParseStrict(text string, oracle Oracle) (chess.Move, error) {
	return parse(text, oracle, true)
}

func parse(text string, oracle Oracle, strict bool) (chess.Move, error) {
	notation := Normalize(text)
	if notation == "" {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrMalformed, Text: text}
	}

	p := &moveParser{
		oracle: oracle,
		side:   oracle.SideToMove(),
		strict: strict,
		text:   notation,
	}

	switch notation {
	case "O-O", "0-0":
		return p.castle(true)
	case "O-O-O", "0-0-0":
		return p.castle(false)
	}

	if strings.ContainsAny(notation, "()") {
		return p.promotion()
	}

	// Two-letter piece qualifiers: QR-K1 moves the queen's rook. The same
	// two letters not followed by a separator name a file instead, so
	// QR4 is a pawn push and QRPxN a pawn capture.
	if len(notation) >= 2 {
		if kind, q, ok := qualifiedPiece(notation[0], notation[1]); ok {
			if len(notation) > 2 && isSeparator(notation[2]) {
				return p.piece(kind, &q, notation[2:])
			}
			return p.pawn(notation)
		}
	}

	switch notation[0] {
	case 'R', 'N', 'B', 'Q':
		// A pawn letter directly after a piece letter only occurs in the
		// origin-file form of a pawn capture (QPxK5).
		if len(notation) > 1 && notation[1] == 'P' {
			return p.pawn(notation)
		}
		return p.piece(chess.PieceFromLetter(notation[0]), nil, notation[1:])
	case 'K':
		if len(notation) > 1 && isSeparator(notation[1]) {
			return p.piece(chess.King, nil, notation[1:])
		}
		// KB, KN and KR were handled above, so a remaining K prefix is a
		// king move written without a separator, the king's file of a
		// pawn destination, or a pawn capture from the king's file. The
		// king reading wins when it resolves.
		if move, err := p.piece(chess.King, nil, notation[1:]); err == nil {
			return move, nil
		}
		return p.pawn(notation)
	default:
		return p.pawn(notation)
	}
}

// isSeparator reports whether a byte separates a piece prefix from its
// destination in normalized text.
func isSeparator(c byte) bool {
	return c == '-' || c == 'X'
}

// qualifiedPiece decodes a two-letter qualified piece name such as QR or
// KN into the piece type and the wing it starts from.
func qualifiedPiece(first, second byte) (chess.Piece, sideQualifier, bool) {
	var q sideQualifier
	switch first {
	case 'Q':
		q = queenside
	case 'K':
		q = kingside
	default:
		return chess.Empty, 0, false
	}
	switch second {
	case 'R':
		return chess.Rook, q, true
	case 'N':
		return chess.Knight, q, true
	case 'B':
		return chess.Bishop, q, true
	}
	return chess.Empty, 0, false
}

// moveParser carries one parse through the per-form parsers. The side to
// move is captured once so every rank in the input resolves against the
// same perspective.
type moveParser struct {
	oracle Oracle
	side   chess.Colour
	strict bool
	text   string
}

func (p *moveParser) malformed() (chess.Move, error) {
	return chess.Move{}, &errors.ParseError{Err: errors.ErrMalformed, Text: p.text}
}

func (p *moveParser) noCandidate() (chess.Move, error) {
	return chess.Move{}, &errors.ParseError{Err: errors.ErrNoLegalCandidate, Text: p.text}
}

// pick reduces a candidate set to the answer, wrapping disambiguation
// failures with the offending text.
func (p *moveParser) pick(cands []chess.Move, qualifier *sideQualifier, isCapture bool) (chess.Move, error) {
	if len(cands) == 0 {
		return p.noCandidate()
	}
	move, err := disambiguate(p.oracle, cands, qualifier, isCapture, p.strict)
	if err != nil {
		return chess.Move{}, &errors.ParseError{Err: err, Text: p.text}
	}
	return move, nil
}

// castle resolves O-O and O-O-O. Castling rights gate the attempt; the
// move itself must still be present in the oracle's legal moves, which
// rules out castling through pieces or checks.
func (p *moveParser) castle(kingside bool) (chess.Move, error) {
	if kingside && !p.oracle.HasKingsideCastlingRights(p.side) {
		return p.noCandidate()
	}
	if !kingside && !p.oracle.HasQueensideCastlingRights(p.side) {
		return p.noCandidate()
	}

	rank := chess.Rank('1')
	if p.side == chess.Black {
		rank = '8'
	}
	toCol := chess.Col('g')
	if !kingside {
		toCol = 'c'
	}
	want := chess.Move{FromCol: 'e', FromRank: rank, ToCol: toCol, ToRank: rank}

	for _, m := range p.oracle.LegalMoves() {
		if m == want {
			return m, nil
		}
	}
	return p.noCandidate()
}

// promotion parses P-<file><rank>(<piece>), optionally with an origin
// file for capturing promotions (KPxQ8(Q)). The destination file must be
// written with its full name.
func (p *moveParser) promotion() (chess.Move, error) {
	toks, err := tokenize(p.text)
	if err != nil {
		return chess.Move{}, err
	}
	s := newScanner(toks)

	var originCols []chess.Col
	isCapture := false

	if t, ok := s.peek(); ok && !(t.kind == tokenLetter && t.ch == 'P') {
		cols, ok := s.matchFile()
		if !ok {
			return p.malformed()
		}
		originCols = cols
	}
	if !s.acceptLetter('P') {
		return p.malformed()
	}
	if t, ok := s.peek(); ok && (t.kind == tokenDash || t.kind == tokenCapture) {
		isCapture = t.kind == tokenCapture
		s.next()
	}

	col, ok := s.matchFullFile()
	if !ok {
		return p.malformed()
	}
	digit, ok := s.acceptDigit()
	if !ok {
		return p.malformed()
	}
	if t, ok := s.next(); !ok || t.kind != tokenLParen {
		return p.malformed()
	}
	t, ok := s.next()
	if !ok || t.kind != tokenLetter {
		return p.malformed()
	}
	promo := chess.PieceFromLetter(t.ch)
	switch promo {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return p.malformed()
	}
	if t, ok := s.next(); !ok || t.kind != tokenRParen {
		return p.malformed()
	}
	if !s.done() {
		return p.malformed()
	}

	rank := rankForSide(p.side, digit)
	var cands []chess.Move
	for _, m := range p.oracle.LegalMoves() {
		if m.ToCol != col || m.ToRank != rank || m.Promotion != promo {
			continue
		}
		if len(originCols) > 0 && !containsCol(originCols, m.FromCol) {
			continue
		}
		cands = append(cands, m)
	}
	return p.pick(cands, nil, isCapture)
}

// piece parses the destination and generic capture forms for a non-pawn
// piece. rest is the notation after the piece letters, separators
// included.
func (p *moveParser) piece(kind chess.Piece, qualifier *sideQualifier, rest string) (chess.Move, error) {
	toks, err := tokenize(rest)
	if err != nil {
		return chess.Move{}, err
	}
	core, isCapture := splitSeparators(toks)
	s := newScanner(core)

	// Generic capture: no destination at all, or a bare captured piece
	// letter. RxN takes whichever knight the rook can capture.
	if s.done() {
		return p.generic(kind, qualifier, chess.Empty, nil)
	}
	if s.remaining() == 1 {
		if t, _ := s.peek(); t.kind == tokenLetter {
			return p.generic(kind, qualifier, chess.PieceFromLetter(t.ch), nil)
		}
	}

	targets, ok := p.destination(s)
	if !ok {
		return p.malformed()
	}
	cands := filterByDestination(p.oracle, kind, targets, nil)
	return p.pick(cands, qualifier, isCapture)
}

// pawn parses pawn destinations (P-K4, K4, QR4), generic pawn captures
// (PxP, PxN) and the origin-file capture form (KPxQ5, QBPxN).
func (p *moveParser) pawn(notation string) (chess.Move, error) {
	toks, err := tokenize(notation)
	if err != nil {
		return chess.Move{}, err
	}
	core, isCapture := splitSeparators(toks)
	s := newScanner(core)

	var originCols []chess.Col
	if !s.acceptLetter('P') {
		originCols = p.originPrefix(s)
	}

	// Generic capture after the prefix. A bare trailing K is not a
	// capture target; it reads as the king's file with a missing rank.
	if s.done() {
		return p.generic(chess.Pawn, nil, chess.Empty, originCols)
	}
	if s.remaining() == 1 {
		if t, _ := s.peek(); t.kind == tokenLetter && t.ch != 'K' {
			return p.generic(chess.Pawn, nil, chess.PieceFromLetter(t.ch), originCols)
		}
	}

	targets, ok := p.destination(s)
	if !ok {
		return p.malformed()
	}
	cands := filterByDestination(p.oracle, chess.Pawn, targets, originCols)
	return p.pick(cands, nil, isCapture)
}

// originPrefix consumes <file>P when present, returning the origin
// columns the file denotes.
func (p *moveParser) originPrefix(s *scanner) []chess.Col {
	start := s.pos
	cols, ok := s.matchFile()
	if ok && s.acceptLetter('P') {
		return cols
	}
	s.pos = start
	return nil
}

// destination consumes <file><rank> to the end of the stream and expands
// it to target squares: two for an abbreviated file letter, one
// otherwise.
func (p *moveParser) destination(s *scanner) ([]square, bool) {
	cols, ok := s.matchFile()
	if !ok {
		return nil, false
	}
	digit, ok := s.acceptDigit()
	if !ok {
		return nil, false
	}
	if !s.done() {
		return nil, false
	}

	rank := rankForSide(p.side, digit)
	targets := make([]square, len(cols))
	for i, col := range cols {
		targets[i] = square{col, rank}
	}
	return targets, true
}

// generic resolves a capture written without a destination square.
func (p *moveParser) generic(kind chess.Piece, qualifier *sideQualifier, captured chess.Piece, originCols []chess.Col) (chess.Move, error) {
	cands := filterByCapturedPiece(p.oracle, kind, captured, originCols)
	return p.pick(cands, qualifier, true)
}
