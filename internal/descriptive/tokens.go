package descriptive

import "github.com/tmorten/descnote-go/internal/errors"

// tokenKind classifies a single character of normalized descriptive text.
type tokenKind int

const (
	tokenLetter  tokenKind = iota // K, Q, R, B, N or P
	tokenDigit                    // 1-8
	tokenCapture                  // x
	tokenDash                     // -
	tokenLParen                   // ( opening a promotion piece
	tokenRParen                   // )
)

type token struct {
	kind tokenKind
	ch   byte
}

// tokenize splits normalized (uppercase, annotation-free) move text into
// single-character tokens. Any character outside the move grammar makes the
// whole input malformed.
func tokenize(text string) ([]token, error) {
	toks := make([]token, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == 'K' || c == 'Q' || c == 'R' || c == 'B' || c == 'N' || c == 'P':
			toks = append(toks, token{tokenLetter, c})
		case c >= '1' && c <= '8':
			toks = append(toks, token{tokenDigit, c})
		case c == 'X':
			toks = append(toks, token{tokenCapture, c})
		case c == '-':
			toks = append(toks, token{tokenDash, c})
		case c == '(':
			toks = append(toks, token{tokenLParen, c})
		case c == ')':
			toks = append(toks, token{tokenRParen, c})
		default:
			return nil, &errors.ParseError{Err: errors.ErrMalformed, Text: text}
		}
	}
	return toks, nil
}

// splitSeparators removes dash and capture tokens wherever they appear,
// returning the structural tokens and whether a capture marker was present.
// Descriptive sources are loose about separator placement (NxKB3 and
// N-KB3 name squares the same way), so the parsers work on the stripped
// stream and treat the capture marker as a standalone flag.
func splitSeparators(toks []token) (core []token, capture bool) {
	core = make([]token, 0, len(toks))
	for _, t := range toks {
		switch t.kind {
		case tokenCapture:
			capture = true
		case tokenDash:
		default:
			core = append(core, t)
		}
	}
	return core, capture
}

// scanner walks a token stream for the recursive descent parsers.
type scanner struct {
	toks []token
	pos  int
}

func newScanner(toks []token) *scanner {
	return &scanner{toks: toks}
}

func (s *scanner) done() bool {
	return s.pos >= len(s.toks)
}

func (s *scanner) remaining() int {
	return len(s.toks) - s.pos
}

func (s *scanner) peek() (token, bool) {
	if s.done() {
		return token{}, false
	}
	return s.toks[s.pos], true
}

func (s *scanner) peekAt(offset int) (token, bool) {
	if s.pos+offset >= len(s.toks) {
		return token{}, false
	}
	return s.toks[s.pos+offset], true
}

func (s *scanner) next() (token, bool) {
	t, ok := s.peek()
	if ok {
		s.pos++
	}
	return t, ok
}

// acceptLetter consumes the next token if it is the given letter.
func (s *scanner) acceptLetter(ch byte) bool {
	t, ok := s.peek()
	if ok && t.kind == tokenLetter && t.ch == ch {
		s.pos++
		return true
	}
	return false
}

// acceptDigit consumes the next token if it is a rank digit.
func (s *scanner) acceptDigit() (byte, bool) {
	t, ok := s.peek()
	if ok && t.kind == tokenDigit {
		s.pos++
		return t.ch, true
	}
	return 0, false
}
