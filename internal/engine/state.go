// Package engine implements the chess rules: move generation, legality
// filtering by simulate-and-undo, turn execution with an exact history
// stack, and check/checkmate/stalemate classification.
//
// An Engine is not safe for concurrent use. Legality filtering mutates the
// live board between a simulated move and its undo, so each caller (one
// validation request, one session replay) must own its instance.
package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Engine holds one board position, the side to move and the turn history.
type Engine struct {
	board   chess.Board
	toMove  chess.Colour
	history []chess.Frame
}

// New returns an engine set up with the standard starting position.
func New() *Engine {
	e := &Engine{}
	e.Initialize()
	return e
}

// Initialize resets to the standard starting layout with White to move
// and an empty history.
func (e *Engine) Initialize() {
	e.board.SetupInitialPosition()
	e.toMove = chess.White
	e.history = nil
}

// GetPiece returns the piece at the location.
func (e *Engine) GetPiece(loc chess.Location) chess.Piece {
	return e.board.Get(loc)
}

// Board returns a copy of the grid.
func (e *Engine) Board() chess.Board {
	return e.board
}

// CurrentPlayer returns the side to move.
func (e *Engine) CurrentPlayer() chess.Colour {
	return e.toMove
}

// SetCurrentPlayer overrides the side to move. Used for scenario setup
// together with SetBoard.
func (e *Engine) SetCurrentPlayer(colour chess.Colour) {
	e.toMove = colour
}

// PreviousMove returns the primary record of the most recent turn.
func (e *Engine) PreviousMove() (chess.Move, bool) {
	if len(e.history) == 0 {
		return chess.Move{}, false
	}
	return e.history[len(e.history)-1].Primary(), true
}

// Ply returns the number of turns on the history stack.
func (e *Engine) Ply() int {
	return len(e.history)
}

// History returns a deep copy of the turn frames, oldest first.
func (e *Engine) History() []chess.Frame {
	frames := make([]chess.Frame, len(e.history))
	for i, f := range e.history {
		frames[i] = f.Clone()
	}
	return frames
}

// LastChanges returns the squares touched by the most recent turn.
func (e *Engine) LastChanges() []chess.BoardChange {
	if len(e.history) == 0 {
		return nil
	}
	top := e.history[len(e.history)-1]
	changes := make([]chess.BoardChange, len(top.Changes))
	copy(changes, top.Changes)
	return changes
}
