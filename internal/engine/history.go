package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Undo reverses the most recent turn exactly. It replays the frame's
// records in insertion order: each on-board origin gets the record's piece
// back and each on-board destination is cleared. Returns false if there
// is nothing to undo.
func (e *Engine) Undo() bool {
	n := len(e.history)
	if n == 0 {
		return false
	}
	frame := e.history[n-1]
	e.history = e.history[:n-1]

	for _, rec := range frame.Moves {
		if rec.From.OnBoard() {
			e.board.Set(rec.From, rec.Piece())
		}
		if rec.To.OnBoard() {
			e.board.Set(rec.To, chess.Empty)
		}
	}

	e.toMove = e.toMove.Opposite()
	return true
}

// ChangePromotion replaces the piece placed by a promotion in the most
// recent turn. It is a no-op, returning false, when the last turn was not a
// promotion or the kind is not one a pawn may become. It must be called
// before the next move is committed.
func (e *Engine) ChangePromotion(kind chess.Kind) bool {
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return false
	}
	if len(e.history) == 0 {
		return false
	}

	top := &e.history[len(e.history)-1]
	for i := range top.Moves {
		rec := &top.Moves[i]
		if rec.Special != chess.PromotionIn {
			continue
		}
		rec.Kind = kind
		e.board.Set(rec.To, rec.Piece())
		return true
	}
	return false
}
