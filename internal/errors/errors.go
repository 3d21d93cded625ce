// Package errors provides sentinel errors and error types for descnote.
// It defines the failure conditions of notation parsing and conversion as
// values that can be inspected with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrMalformed indicates input that does not match any move grammar.
	ErrMalformed = errors.New("malformed notation")

	// ErrNoLegalCandidate indicates that the grammar matched but no legal
	// move satisfies the resolved constraints.
	ErrNoLegalCandidate = errors.New("no legal move matches")

	// ErrUnresolvedAmbiguity indicates that more than one legal move
	// satisfies the constraints and strict disambiguation was requested.
	ErrUnresolvedAmbiguity = errors.New("ambiguous move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError wraps a parse failure with the move text that caused it.
// It supports unwrapping via errors.Is() and errors.As().
type ParseError struct {
	Err  error  // The underlying error (one of the sentinels above)
	Text string // The normalized move text that failed
}

// Error returns a formatted error message.
func (e *ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("move %q: %v", e.Text, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// GameError wraps errors with game context: game number, ply position, move
// text and the source file location, when known.
type GameError struct {
	Err      error
	GameNum  int    // 1-based game number in the input
	PlyNum   int    // Ply number where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in the source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
