package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once, since the engine promotes to a Queen by default.
func Perft(e *Engine, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := e.GetAllAvailableMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		e.execute(m)
		nodes += Perft(e, depth-1)
		e.Undo() // frame pushed by execute above
	}
	return nodes
}

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft count of each legal root move, in generation order.
func Divide(e *Engine, depth int) []DivideEntry {
	moves := e.GetAllAvailableMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		e.execute(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(e, depth-1)})
		e.Undo() // frame pushed by execute above
	}
	return entries
}
