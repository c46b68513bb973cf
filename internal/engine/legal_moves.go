package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GetAvailableMoves returns the legal moves of the piece at the location,
// whichever side owns it. An empty square has no moves.
func (e *Engine) GetAvailableMoves(loc chess.Location) []chess.Move {
	return e.legalMoves(loc)
}

// GetAllAvailableMoves returns every legal move of the side to move.
func (e *Engine) GetAllAvailableMoves() []chess.Move {
	return e.allLegalMoves(e.toMove)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (e *Engine) HasLegalMoves(colour chess.Colour) bool {
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			loc := chess.At(col, row)
			if piece := e.board.Get(loc); piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if len(e.legalMoves(loc)) > 0 {
				return true
			}
		}
	}
	return false
}

// allLegalMoves collects the legal moves of every piece of the given colour.
func (e *Engine) allLegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			loc := chess.At(col, row)
			if piece := e.board.Get(loc); piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			moves = append(moves, e.legalMoves(loc)...)
		}
	}
	return moves
}

// legalMoves filters the pseudo-legal candidates of a square down to those
// that do not leave the mover's king attacked.
func (e *Engine) legalMoves(from chess.Location) []chess.Move {
	candidates := e.pseudoMoves(from, true)
	legal := candidates[:0]
	for _, m := range candidates {
		if e.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal executes the candidate on the live board, scans the opponent's
// threats and undoes it. The board is restored before returning, so no
// other mutation may run in between.
func (e *Engine) isLegal(m chess.Move) bool {
	e.execute(m)
	attacked := e.GetBoardThreats(m.Colour).KingAttacked
	e.Undo() // execute pushed a frame, so this always pops
	return !attacked
}
