package worker

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// Replay is the ProcessFunc used for validation. It replays the item on a
// fresh engine and reports the position reached, stopping at the first
// rejected move.
func Replay(item WorkItem) ProcessResult {
	e := engine.New()
	err := e.Load(item.Moves)
	return ProcessResult{
		Index: item.Index,
		Name:  item.Name,
		State: e.GetBoardState(),
		Ply:   e.Ply(),
		FEN:   e.FEN(),
		Sig:   hashing.Sign(item.Name, e),
		Err:   err,
	}
}
