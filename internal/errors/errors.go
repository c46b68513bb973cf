// Package errors provides sentinel errors and error types for the chess rules engine
// and its collaborators. Sentinels are checked with errors.Is(); the structured
// types keep move and layout context while still unwrapping to a sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidMove indicates a requested move is not among the candidates for its origin square.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidLayout indicates a board layout with an out-of-range character or bad dimensions.
	ErrInvalidLayout = errors.New("board layout out of range")

	// ErrInvalidNotation indicates a move string that is not <file><rank><file><rank>.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameArchived indicates a move was submitted to a finished game.
	ErrGameArchived = errors.New("game is archived")

	// ErrNotYourTurn indicates a move submitted by the player not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrInvalidPlayers indicates a game without two distinct, non-empty player names.
	ErrInvalidPlayers = errors.New("need two distinct player names")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps an error with the ply and notation of the move that caused it.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number (0 if not applicable)
	Notation string // The move text, e.g. "E2E4"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// LayoutError points at the offending character of a board layout.
type LayoutError struct {
	Err    error // The underlying error
	Line   int   // Line number (1-based)
	Column int   // Column number (1-based, 0 if the whole line is at fault)
	Got    string
}

// Error returns a formatted error message with location and context.
func (e *LayoutError) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Column > 0 {
		loc += fmt.Sprintf(":%d", e.Column)
	}
	msg := loc
	if e.Got != "" {
		msg += fmt.Sprintf(": unexpected %s", e.Got)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
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
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
