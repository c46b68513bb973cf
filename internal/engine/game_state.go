package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GetBoardState classifies the position for the side to move.
func (e *Engine) GetBoardState() chess.GameState {
	colour := e.toMove
	attacked := e.IsInCheck(colour)
	hasMoves := e.HasLegalMoves(colour)

	switch {
	case attacked && hasMoves:
		return chess.Check
	case attacked:
		return chess.Checkmate
	case hasMoves:
		return chess.Normal
	default:
		return chess.Stalemate
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func (e *Engine) IsCheckmate() bool {
	return e.GetBoardState() == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func (e *Engine) IsStalemate() bool {
	return e.GetBoardState() == chess.Stalemate
}
