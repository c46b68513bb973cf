package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestGetBoardState(t *testing.T) {
	tests := []struct {
		name   string
		layout string
		toMove chess.Colour
		want   chess.GameState
	}{
		{
			name:   "initial",
			layout: InitialLayout,
			toMove: chess.White,
			want:   chess.Normal,
		},
		{
			name: "rook check with escape squares",
			layout: `k------R
--------
--------
--------
--------
--------
--------
-------K`,
			toMove: chess.Black,
			want:   chess.Check,
		},
		{
			name: "back rank mate",
			layout: `k------R
pp------
--------
--------
--------
--------
--------
-------K`,
			toMove: chess.Black,
			want:   chess.Checkmate,
		},
		{
			name: "queen stalemate",
			layout: `k-------
--------
-Q------
--------
--------
--------
--------
-------K`,
			toMove: chess.Black,
			want:   chess.Stalemate,
		},
		{
			name: "stalemated side with a blocked pawn",
			layout: `k-------
--------
-Q------
--------
--------
p-------
P-------
-------K`,
			toMove: chess.Black,
			want:   chess.Stalemate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustLayout(t, tt.layout, tt.toMove)
			got := e.GetBoardState()
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, e.IsCheckmate(), tt.want == chess.Checkmate, "IsCheckmate")
			testutil.AssertEqual(t, e.IsStalemate(), tt.want == chess.Stalemate, "IsStalemate")
		})
	}
}

func TestScholarsMate(t *testing.T) {
	e := mustReplay(t, "E2E4", "A7A6", "F1C4", "H7H6", "D1F3", "A6A5", "F3F7")

	testutil.AssertEqual(t, e.GetBoardState(), chess.Checkmate)
	testutil.AssertEqual(t, len(e.GetAllAvailableMoves()), 0)
	testutil.AssertTrue(t, e.IsInCheck(chess.Black))

	prev, ok := e.PreviousMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, prev.Colour, chess.White)
	testutil.AssertEqual(t, prev.String(), "F3F7")
}

func TestGetBoardThreats_Initial(t *testing.T) {
	e := New()
	threats := e.GetBoardThreats(chess.White)

	testutil.AssertFalse(t, threats.KingAttacked)
	// 14 pawn diagonals and 4 knight jumps; pawn pushes never threaten.
	testutil.AssertEqual(t, len(threats.Moves), 18)
	for _, m := range threats.Moves {
		if m.Colour != chess.Black {
			t.Errorf("threat %v has colour %v, want Black", m, m.Colour)
		}
		if m.To.Row != 2 {
			t.Errorf("threat %v lands outside rank 6", m)
		}
	}
}

func TestGetBoardThreats_PawnDiagonalOnly(t *testing.T) {
	// A king directly in front of an enemy pawn is not attacked by it.
	e := mustLayout(t, `k-------
--------
--------
----p---
----K---
--------
--------
--------`, chess.White)
	testutil.AssertFalse(t, e.IsInCheck(chess.White))

	e = mustLayout(t, `k-------
--------
--------
---p----
----K---
--------
--------
--------`, chess.White)
	testutil.AssertTrue(t, e.IsInCheck(chess.White))
}

func TestGetBoardThreats_PawnEmptyDiagonals(t *testing.T) {
	// Both diagonals count even when empty; the push does not.
	e := mustLayout(t, `k-------
--------
--------
----p---
--------
--------
--------
-------K`, chess.White)
	got := map[string]bool{}
	for _, m := range e.GetBoardThreats(chess.White).Moves {
		got[m.String()] = true
	}
	testutil.AssertTrue(t, got["E5D4"], "left diagonal")
	testutil.AssertTrue(t, got["E5F4"], "right diagonal")
	testutil.AssertFalse(t, got["E5E4"], "push")
}

func TestGetBoardThreats_NoKing(t *testing.T) {
	e := mustLayout(t, `r-------
--------
--------
--------
--------
--------
--------
--------`, chess.White)
	threats := e.GetBoardThreats(chess.White)

	testutil.AssertFalse(t, threats.KingAttacked)
	testutil.AssertEqual(t, len(threats.Moves), 14)
}
