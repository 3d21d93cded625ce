// Package output writes converted games: tag headers, numbered move text
// wrapped to a fixed width, and the game result.
package output

import (
	"fmt"
	"io"
	"sort"
)

// DefaultLineWidth is the wrap width for move text.
const DefaultLineWidth = 80

// rosterTags is the fixed ordering of the well-known header tags; any
// remaining tags follow alphabetically.
var rosterTags = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// Game is a fully converted game ready to be written.
type Game struct {
	Tags   map[string]string
	Moves  []string // already rendered in the output notation
	Result string   // "*" is substituted when empty
}

// Writer lays out converted games on an io.Writer.
type Writer struct {
	w         io.Writer
	lineWidth int
}

// NewWriter returns a Writer with the default line width.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, lineWidth: DefaultLineWidth}
}

// SetLineWidth overrides the wrap width for move text.
func (w *Writer) SetLineWidth(width int) {
	if width > 0 {
		w.lineWidth = width
	}
}

// WriteGame writes one game: tags, a blank line, then numbered moves and
// the result.
func (w *Writer) WriteGame(game *Game) error {
	for _, name := range tagOrder(game.Tags) {
		if _, err := fmt.Fprintf(w.w, "[%s \"%s\"]\n", name, game.Tags[name]); err != nil {
			return err
		}
	}
	if len(game.Tags) > 0 {
		if _, err := fmt.Fprintln(w.w); err != nil {
			return err
		}
	}

	result := game.Result
	if result == "" {
		result = "*"
	}
	text := moveText(game.Moves, result)
	if err := w.writeWrapped(text); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w.w)
	return err
}

// moveText joins the moves with white-move numbers and appends the result.
func moveText(moves []string, result string) []string {
	tokens := make([]string, 0, len(moves)+len(moves)/2+1)
	for i, move := range moves {
		if i%2 == 0 {
			tokens = append(tokens, fmt.Sprintf("%d.", i/2+1))
		}
		tokens = append(tokens, move)
	}
	return append(tokens, result)
}

// writeWrapped writes tokens separated by spaces, breaking lines before
// the wrap width is exceeded.
func (w *Writer) writeWrapped(tokens []string) error {
	lineLen := 0
	for _, tok := range tokens {
		switch {
		case lineLen == 0:
			if _, err := io.WriteString(w.w, tok); err != nil {
				return err
			}
			lineLen = len(tok)
		case lineLen+1+len(tok) > w.lineWidth:
			if _, err := fmt.Fprintf(w.w, "\n%s", tok); err != nil {
				return err
			}
			lineLen = len(tok)
		default:
			if _, err := fmt.Fprintf(w.w, " %s", tok); err != nil {
				return err
			}
			lineLen += 1 + len(tok)
		}
	}
	if lineLen > 0 {
		if _, err := fmt.Fprintln(w.w); err != nil {
			return err
		}
	}
	return nil
}

// tagOrder returns the game's tag names, roster tags first in their fixed
// order, the rest alphabetically.
func tagOrder(tags map[string]string) []string {
	order := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, name := range rosterTags {
		if _, ok := tags[name]; ok {
			order = append(order, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range tags {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}
