// Package crosscheck compares the engine's legal moves with the independent
// bitboard generator github.com/dylhunn/dragontoothmg, using the engine's
// FEN export as the common position format.
package crosscheck

import (
	"sort"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Mismatch lists the moves the two generators disagree on in one position.
type Mismatch struct {
	FEN     string
	Ply     int
	Missing []string // legal according to the reference only
	Extra   []string // legal according to the engine only
}

// Empty reports whether the generators agreed.
func (m Mismatch) Empty() bool {
	return len(m.Missing) == 0 && len(m.Extra) == 0
}

// Compare checks the side to move's legal moves. The engine promotes to a
// Queen by default, so the reference's four promotion choices collapse to
// one origin-destination pair.
func Compare(e *engine.Engine) Mismatch {
	fen := e.FEN()
	board := dragontoothmg.ParseFen(fen)

	reference := make(map[string]bool)
	for _, m := range board.GenerateLegalMoves() {
		reference[strings.ToUpper(m.String())[:4]] = true
	}
	ours := make(map[string]bool)
	for _, m := range e.GetAllAvailableMoves() {
		ours[m.String()] = true
	}

	result := Mismatch{FEN: fen, Ply: e.Ply()}
	for s := range reference {
		if !ours[s] {
			result.Missing = append(result.Missing, s)
		}
	}
	for s := range ours {
		if !reference[s] {
			result.Extra = append(result.Extra, s)
		}
	}
	sort.Strings(result.Missing)
	sort.Strings(result.Extra)
	return result
}

// Walk plays up to plies moves from the engine's position, comparing before
// each one and returning every disagreement. The move played at each ply is
// chosen from the sorted legal moves by pick(ply, count), so walks are
// reproducible. The walk ends early when the side to move has no moves.
func Walk(e *engine.Engine, plies int, pick func(ply, count int) int) ([]Mismatch, error) {
	var mismatches []Mismatch
	for ply := 0; ply < plies; ply++ {
		if m := Compare(e); !m.Empty() {
			mismatches = append(mismatches, m)
		}

		moves := e.GetAllAvailableMoves()
		if len(moves) == 0 {
			break
		}
		sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
		if err := e.MakeMove(moves[pick(ply, len(moves))], true); err != nil {
			return mismatches, err
		}
	}
	return mismatches, nil
}

// Stride returns a pick function that steps through the move list by a
// fixed stride, giving a deterministic but varied game.
func Stride(step, offset int) func(ply, count int) int {
	return func(ply, count int) int {
		return (ply*step + offset) % count
	}
}
