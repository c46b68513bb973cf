package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Threats is the result of a threat scan against one side.
type Threats struct {
	// KingAttacked is true if the evaluated side's king stands on a threatened square.
	KingAttacked bool

	// Moves is the union of the opposing side's attacks. Pawns contribute
	// both forward diagonals whether or not a piece stands there, and never
	// their pushes, so this is not the side's pseudo-legal move set.
	Moves []chess.Move
}

// GetBoardThreats generates the threatening moves of the side opposite
// evaluateForSide and reports whether evaluateForSide's king is attacked.
// A side without a king on the board is never attacked.
func (e *Engine) GetBoardThreats(evaluateForSide chess.Colour) Threats {
	attacker := evaluateForSide.Opposite()

	var threats Threats
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			loc := chess.At(col, row)
			if piece := e.board.Get(loc); piece.IsEmpty() || piece.Colour != attacker {
				continue
			}
			threats.Moves = append(threats.Moves, e.attackMoves(loc)...)
		}
	}

	king, ok := e.board.FindKing(evaluateForSide)
	if !ok {
		return threats
	}
	for _, m := range threats.Moves {
		if m.To == king {
			threats.KingAttacked = true
			break
		}
	}
	return threats
}

// IsInCheck returns true if the given colour's king is attacked.
func (e *Engine) IsInCheck(colour chess.Colour) bool {
	return e.GetBoardThreats(colour).KingAttacked
}

// attackedSquares returns the set of squares threatened by the given colour.
func (e *Engine) attackedSquares(byColour chess.Colour) map[chess.Location]bool {
	threats := e.GetBoardThreats(byColour.Opposite())
	squares := make(map[chess.Location]bool, len(threats.Moves))
	for _, m := range threats.Moves {
		squares[m.To] = true
	}
	return squares
}
