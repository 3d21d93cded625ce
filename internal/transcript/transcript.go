// Package transcript reads game records written in descriptive notation.
// A record is an optional block of PGN-style [Tag "Value"] header lines
// followed by move text: whitespace-separated moves with optional move
// numbers, ended by a result (1-0, 0-1, 1/2-1/2 or *) or by the next
// game's header block. A % starts a comment that runs to the end of the
// line. One stream may hold any number of games.
package transcript

import (
	"bufio"
	"io"
	"strings"

	"github.com/tmorten/descnote-go/internal/errors"
)

// Game is one parsed game record.
type Game struct {
	Tags      map[string]string
	Moves     []string
	Result    string // "" when the record ends without one
	StartLine int    // 1-based line of the first tag or move
}

// results that terminate a game's move text.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Reader splits a stream into games.
type Reader struct {
	scanner    *bufio.Scanner
	pending    string
	hasPending bool
	line       int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next game in the stream, or io.EOF when none remain.
func (r *Reader) Next() (*Game, error) {
	game := &Game{Tags: make(map[string]string)}
	inMoves := false

	for {
		line, ok := r.peekLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "%"):
			r.consume()

		case strings.HasPrefix(trimmed, "["):
			if inMoves {
				// Header of the following game; leave it for the next call.
				return game, nil
			}
			if game.StartLine == 0 {
				game.StartLine = r.line
			}
			name, value, err := parseTag(trimmed)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", r.line)
			}
			game.Tags[name] = value
			r.consume()

		default:
			if game.StartLine == 0 {
				game.StartLine = r.line
			}
			r.consume()
			inMoves = true
			if appendMoves(game, trimmed) {
				return game, nil
			}
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if !inMoves && len(game.Tags) == 0 {
		return nil, io.EOF
	}
	return game, nil
}

// ReadAll reads every game from r.
func ReadAll(r io.Reader) ([]Game, error) {
	reader := NewReader(r)
	var games []Game
	for {
		game, err := reader.Next()
		if err == io.EOF {
			return games, nil
		}
		if err != nil {
			return games, err
		}
		games = append(games, *game)
	}
}

func (r *Reader) peekLine() (string, bool) {
	if r.hasPending {
		return r.pending, true
	}
	if !r.scanner.Scan() {
		return "", false
	}
	r.line++
	r.pending = r.scanner.Text()
	r.hasPending = true
	return r.pending, true
}

func (r *Reader) consume() {
	r.hasPending = false
}

// appendMoves adds the move tokens of one line to the game, reporting
// whether a result token ended the game.
func appendMoves(game *Game, line string) bool {
	if i := strings.Index(line, "%"); i >= 0 {
		line = line[:i]
	}
	for _, tok := range strings.Fields(line) {
		tok = trimMoveNumber(tok)
		if tok == "" {
			continue
		}
		if results[tok] {
			game.Result = tok
			return true
		}
		game.Moves = append(game.Moves, tok)
	}
	return false
}

// trimMoveNumber strips a leading move number such as "3." or "12..." from
// a token. A bare number becomes empty; tokens like 1-0 or 0-0 that merely
// start with a digit pass through unchanged.
func trimMoveNumber(tok string) string {
	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i == 0 {
		return tok
	}
	j := i
	for j < len(tok) && tok[j] == '.' {
		j++
	}
	if j == i {
		if i == len(tok) {
			return ""
		}
		return tok
	}
	return tok[j:]
}

// parseTag decodes a [Name "Value"] header line.
func parseTag(line string) (name, value string, err error) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", "", errors.Wrapf(errors.ErrMalformed, "tag %q", line)
	}
	body := strings.TrimSpace(line[1 : len(line)-1])

	i := strings.IndexAny(body, " \t")
	if i < 0 {
		return "", "", errors.Wrapf(errors.ErrMalformed, "tag %q", line)
	}
	name = body[:i]

	rest := strings.TrimSpace(body[i+1:])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", errors.Wrapf(errors.ErrMalformed, "tag %q", line)
	}
	return name, rest[1 : len(rest)-1], nil
}
