// Package processing analyses replayed move lists.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a move list.
type GameAnalysis struct {
	Positions []uint64 // Zobrist hash of the start and of every position after it

	Captures        int
	Checks          int // moves leaving the opponent in check or checkmate
	Castlings       int
	EnPassants      int
	Promotions      int
	Underpromotions int

	MaxRepetition           int  // highest number of times one position occurred
	HasRepetition           bool // some position occurred three times
	HasInsufficientMaterial bool
}

// AnalyzeGame replays the moves from the starting position. On a rejected
// move the analysis covers the moves accepted before it and the error is
// returned alongside.
func AnalyzeGame(moves []string) (*engine.Engine, *GameAnalysis, error) {
	e := engine.New()
	analysis := &GameAnalysis{}

	positionCount := make(map[uint64]int)
	record := func() {
		hash := hashing.Position(e)
		analysis.Positions = append(analysis.Positions, hash)
		positionCount[hash]++
		if n := positionCount[hash]; n > analysis.MaxRepetition {
			analysis.MaxRepetition = n
		}
	}
	record()

	var err error
	for _, text := range moves {
		if err = e.MakeMoveFromString(text); err != nil {
			break
		}
		if state := e.GetBoardState(); state == chess.Check || state == chess.Checkmate {
			analysis.Checks++
		}
		record()
	}

	for _, frame := range e.History() {
		countFrame(analysis, frame)
	}
	analysis.HasRepetition = analysis.MaxRepetition >= 3
	analysis.HasInsufficientMaterial = HasInsufficientMaterial(e.Board())
	return e, analysis, err
}

// countFrame tallies the special records of one turn.
func countFrame(analysis *GameAnalysis, frame chess.Frame) {
	switch frame.Primary().Special {
	case chess.Castling:
		analysis.Castlings++
	case chess.EnPassant:
		analysis.EnPassants++
	}
	if _, ok := frame.Captured(); ok {
		analysis.Captures++
	}
	for _, m := range frame.Moves {
		if m.Special != chess.PromotionIn {
			continue
		}
		analysis.Promotions++
		if m.Kind != chess.Queen {
			analysis.Underpromotions++
		}
	}
}

// HasInsufficientMaterial reports whether neither side can mate: bare
// kings, or a king with a single bishop or knight against a bare king.
func HasInsufficientMaterial(board chess.Board) bool {
	minors := 0
	for col := 0; col < chess.BoardSize; col++ {
		for row := 0; row < chess.BoardSize; row++ {
			switch board.Get(chess.At(col, row)).Kind {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop, chess.Knight:
				minors++
			}
		}
	}
	return minors <= 1
}
