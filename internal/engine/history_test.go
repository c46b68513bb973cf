package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestUndo_Empty(t *testing.T) {
	e := New()
	testutil.AssertFalse(t, e.Undo(), "Undo on a fresh game")
	testutil.AssertEqual(t, e.String(), InitialLayout)
}

func TestUndo_Sequence(t *testing.T) {
	moves := []string{"E2E4", "D7D5", "E4D5", "D8D5", "B1C3", "D5A5"}

	e := New()
	boards := []chess.Board{e.Board()}
	for _, m := range moves {
		testutil.AssertNoError(t, e.MakeMoveFromString(m), m)
		boards = append(boards, e.Board())
	}

	for i := len(moves); i > 0; i-- {
		testutil.AssertEqual(t, e.Board(), boards[i], "board at ply %d", i)
		testutil.AssertTrue(t, e.Undo(), "Undo at ply %d", i)
	}
	testutil.AssertEqual(t, e.Board(), boards[0])
	testutil.AssertEqual(t, e.CurrentPlayer(), chess.White)
	testutil.AssertFalse(t, e.Undo())
}

func TestUndo_RestoresPreviousMove(t *testing.T) {
	e := mustReplay(t, "E2E4", "E7E5")
	testutil.AssertTrue(t, e.Undo())

	prev, ok := e.PreviousMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, prev.String(), "E2E4")
	testutil.AssertEqual(t, e.CurrentPlayer(), chess.Black)
}

func TestUndo_EnPassant(t *testing.T) {
	e := mustReplay(t, "B2B4", "G7G5", "B4B5", "C7C5")
	before := e.Board()

	testutil.AssertNoError(t, e.MakeMoveFromString("B5C6"))
	testutil.AssertTrue(t, e.Undo())
	testutil.AssertEqual(t, e.Board(), before)

	// The opportunity is back since the double advance is again the last move.
	moves := e.GetAvailableMoves(sq(t, "B5"))
	testutil.AssertEqual(t, findMove(t, moves, "B5C6").Special, chess.EnPassant)
}

const promotionLayout = `-------k
P-------
--------
--------
--------
--------
--------
K-------`

func TestChangePromotion(t *testing.T) {
	tests := []struct {
		kind chess.Kind
		want bool
	}{
		{chess.Queen, true},
		{chess.Rook, true},
		{chess.Bishop, true},
		{chess.Knight, true},
		{chess.King, false},
		{chess.Pawn, false},
		{chess.NoKind, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := mustLayout(t, promotionLayout, chess.White)
			testutil.AssertNoError(t, e.MakeMoveFromString("A7A8"))

			got := e.ChangePromotion(tt.kind)
			testutil.AssertEqual(t, got, tt.want)

			want := chess.W(chess.Queen)
			if tt.want {
				want = chess.W(tt.kind)
			}
			testutil.AssertEqual(t, e.GetPiece(sq(t, "A8")), want)
			testutil.AssertEqual(t, e.History()[0].Moves[2].Kind, want.Kind, "PromotionIn record")
		})
	}
}

func TestChangePromotion_NotAPromotion(t *testing.T) {
	e := mustReplay(t, "E2E4")
	testutil.AssertFalse(t, e.ChangePromotion(chess.Knight))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "E4")), chess.W(chess.Pawn))

	testutil.AssertFalse(t, New().ChangePromotion(chess.Knight), "empty history")
}

func TestChangePromotion_ThenUndo(t *testing.T) {
	e := mustLayout(t, promotionLayout, chess.White)
	before := e.Board()

	testutil.AssertNoError(t, e.MakeMoveFromString("A7A8"))
	testutil.AssertTrue(t, e.ChangePromotion(chess.Knight))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "A8")), chess.W(chess.Knight))

	testutil.AssertTrue(t, e.Undo())
	testutil.AssertEqual(t, e.Board(), before)
}

func TestLegalityCheckLeavesHistory(t *testing.T) {
	e := New()
	testutil.AssertNoError(t, e.Load([]string{"E2E4", "E7E5", "G1F3"}))
	board, history := e.Board(), e.History()

	testutil.AssertEqual(t, len(e.GetAllAvailableMoves()), 29)
	testutil.AssertEqual(t, e.Board(), board)
	testutil.AssertEqual(t, e.History(), history)
	testutil.AssertEqual(t, e.Ply(), 3)
}
