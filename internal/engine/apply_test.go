package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestMakeMove_Simple(t *testing.T) {
	e := New()
	move := chess.Move{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "E2"), To: sq(t, "E4")}

	testutil.AssertNoError(t, e.MakeMove(move, true))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "E4")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "E2")), chess.Empty)
	testutil.AssertEqual(t, e.CurrentPlayer(), chess.Black)
	testutil.AssertEqual(t, e.Ply(), 1)

	prev, ok := e.PreviousMove()
	testutil.AssertTrue(t, ok, "PreviousMove present")
	testutil.AssertEqual(t, prev, move)
	testutil.AssertEqual(t, e.LastChanges(), []chess.BoardChange{
		{Location: sq(t, "E2"), Role: chess.PreviousMoveFrom},
		{Location: sq(t, "E4"), Role: chess.PreviousMoveTo},
	})
}

func TestMakeMove_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		move     chess.Move
		validate bool
	}{
		{
			name:     "wrong side to move",
			move:     chess.Move{Kind: chess.Pawn, Colour: chess.Black, From: chess.At(4, 1), To: chess.At(4, 3)},
			validate: true,
		},
		{
			name:     "pawn three squares",
			move:     chess.Move{Kind: chess.Pawn, Colour: chess.White, From: chess.At(4, 6), To: chess.At(4, 3)},
			validate: true,
		},
		{
			name:     "kind does not match the square",
			move:     chess.Move{Kind: chess.Knight, Colour: chess.White, From: chess.At(4, 6), To: chess.At(4, 4)},
			validate: false,
		},
		{
			name:     "off-board destination",
			move:     chess.Move{Kind: chess.Knight, Colour: chess.White, From: chess.At(6, 7), To: chess.OffBoard},
			validate: false,
		},
		{
			name:     "empty origin",
			move:     chess.Move{Kind: chess.Pawn, Colour: chess.White, From: chess.At(4, 4), To: chess.At(4, 3)},
			validate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			err := e.MakeMove(tt.move, tt.validate)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)

			var moveErr *errors.MoveError
			testutil.AssertTrue(t, errors.As(err, &moveErr), "error is a *MoveError")
			testutil.AssertEqual(t, moveErr.Ply, 1)

			testutil.AssertEqual(t, e.String(), InitialLayout, "board unchanged")
			testutil.AssertEqual(t, e.Ply(), 0)
			testutil.AssertEqual(t, e.CurrentPlayer(), chess.White)
		})
	}
}

func TestMakeMove_WithoutValidationIgnoresTurn(t *testing.T) {
	e := New()
	move := chess.Move{Kind: chess.Pawn, Colour: chess.Black, From: sq(t, "E7"), To: sq(t, "E5")}

	testutil.AssertNoError(t, e.MakeMove(move, false))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "E5")), chess.B(chess.Pawn))
}

func TestMakeMove_PinnedPiece(t *testing.T) {
	layout := `k---r---
--------
--------
--------
--------
--------
----B---
----K---`
	bishop := chess.Move{Kind: chess.Bishop, Colour: chess.White, From: chess.At(4, 6), To: chess.At(3, 5)}

	e := mustLayout(t, layout, chess.White)
	testutil.AssertEqual(t, notations(e.GetAvailableMoves(sq(t, "E2"))), []string{})
	testutil.AssertErrorIs(t, e.MakeMove(bishop, true), errors.ErrInvalidMove)

	testutil.AssertNoError(t, e.MakeMove(bishop, false))
	testutil.AssertTrue(t, e.IsInCheck(chess.White), "unvalidated move exposes the king")
}

func TestMakeMove_CaptureFrame(t *testing.T) {
	e := mustReplay(t, "E2E4", "D7D5", "E4D5")

	frame := e.History()[2]
	testutil.AssertEqual(t, frame.Moves, []chess.Move{
		{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "E4"), To: sq(t, "D5"), Special: chess.Capture},
		{Kind: chess.Pawn, Colour: chess.Black, From: sq(t, "D5"), To: chess.OffBoard, Special: chess.Capture},
	})
	testutil.AssertEqual(t, e.LastChanges(), []chess.BoardChange{
		{Location: sq(t, "E4"), Role: chess.PreviousMoveFrom},
		{Location: sq(t, "D5"), Role: chess.PreviousMoveTo},
		{Location: sq(t, "D5"), Role: chess.ChangeCapture},
	})

	captured, ok := frame.Captured()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, captured, chess.B(chess.Pawn))
}

func TestMakeMove_EnPassant(t *testing.T) {
	e := mustReplay(t, "B2B4", "G7G5", "B4B5", "C7C5")

	// The request carries no tag; the generated candidate decides.
	move := chess.Move{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "B5"), To: sq(t, "C6")}
	testutil.AssertNoError(t, e.MakeMove(move, true))

	testutil.AssertEqual(t, e.GetPiece(sq(t, "C6")), chess.W(chess.Pawn))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "C5")), chess.Empty)
	testutil.AssertEqual(t, e.GetPiece(sq(t, "B5")), chess.Empty)

	frame := e.History()[4]
	testutil.AssertEqual(t, frame.Moves, []chess.Move{
		{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "B5"), To: sq(t, "C6"), Special: chess.EnPassant},
		{Kind: chess.Pawn, Colour: chess.Black, From: sq(t, "C5"), To: chess.OffBoard, Special: chess.Capture},
	})
	testutil.AssertEqual(t, e.LastChanges(), []chess.BoardChange{
		{Location: sq(t, "B5"), Role: chess.PreviousMoveFrom},
		{Location: sq(t, "C6"), Role: chess.PreviousMoveTo},
		{Location: sq(t, "C5"), Role: chess.ChangeCapture},
	})

	captured, ok := frame.Captured()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, captured, chess.B(chess.Pawn))
}

func TestMakeMove_EnPassantExpires(t *testing.T) {
	e := mustReplay(t, "B2B4", "G7G5", "B4B5", "C7C5", "H2H3", "H7H6")
	err := e.MakeMoveFromString("B5C6")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidMove)
}

func TestMakeMove_PromotionFrame(t *testing.T) {
	e := mustLayout(t, `-------k
P-------
--------
--------
--------
--------
--------
K-------`, chess.White)

	testutil.AssertNoError(t, e.MakeMoveFromString("A7A8"))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "A8")), chess.W(chess.Queen))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "A7")), chess.Empty)
	testutil.AssertEqual(t, e.GetBoardState(), chess.Check)

	frame := e.History()[0]
	testutil.AssertEqual(t, frame.Moves, []chess.Move{
		{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "A7"), To: sq(t, "A8"), Special: chess.Promotion},
		{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "A7"), To: chess.OffBoard, Special: chess.PromotionOut},
		{Kind: chess.Queen, Colour: chess.White, From: chess.OffBoard, To: sq(t, "A8"), Special: chess.PromotionIn},
	})
}

func TestMakeMove_PromotionCapture(t *testing.T) {
	e := mustLayout(t, `r------k
-P------
--------
--------
--------
--------
--------
-------K`, chess.White)
	before := e.Board()

	testutil.AssertNoError(t, e.MakeMoveFromString("B7A8"))
	testutil.AssertEqual(t, e.GetPiece(sq(t, "A8")), chess.W(chess.Queen))

	frame := e.History()[0]
	testutil.AssertEqual(t, frame.Moves, []chess.Move{
		{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "B7"), To: sq(t, "A8"), Special: chess.Promotion},
		{Kind: chess.Pawn, Colour: chess.White, From: sq(t, "B7"), To: chess.OffBoard, Special: chess.PromotionOut},
		{Kind: chess.Queen, Colour: chess.White, From: chess.OffBoard, To: sq(t, "A8"), Special: chess.PromotionIn},
		{Kind: chess.Rook, Colour: chess.Black, From: sq(t, "A8"), To: chess.OffBoard, Special: chess.Capture},
	})

	testutil.AssertTrue(t, e.Undo())
	testutil.AssertEqual(t, e.Board(), before)
}

// Every pseudo-legal candidate, legal or not, must be reversed exactly.
func TestMakeMove_UndoRoundTrip(t *testing.T) {
	positions := []struct {
		name   string
		engine func(t *testing.T) *Engine
	}{
		{"initial", func(t *testing.T) *Engine { return New() }},
		{"kiwipete", func(t *testing.T) *Engine { return mustLayout(t, kiwipeteLayout, chess.White) }},
		{"kiwipete black", func(t *testing.T) *Engine { return mustLayout(t, kiwipeteLayout, chess.Black) }},
		{"en passant pending", func(t *testing.T) *Engine {
			return mustReplay(t, "B2B4", "G7G5", "B4B5", "C7C5")
		}},
	}

	for _, pos := range positions {
		t.Run(pos.name, func(t *testing.T) {
			e := pos.engine(t)
			board := e.Board()
			toMove := e.CurrentPlayer()
			ply := e.Ply()
			prev, _ := e.PreviousMove()

			for col := 0; col < chess.BoardSize; col++ {
				for row := 0; row < chess.BoardSize; row++ {
					for _, m := range e.pseudoMoves(chess.At(col, row), true) {
						if err := e.MakeMove(m, false); err != nil {
							t.Fatalf("MakeMove(%v) error: %v", m, err)
						}
						testutil.AssertTrue(t, e.Undo(), "Undo after %v", m)

						testutil.AssertEqual(t, e.Board(), board, "board after %v", m)
						testutil.AssertEqual(t, e.CurrentPlayer(), toMove, "side after %v", m)
						testutil.AssertEqual(t, e.Ply(), ply, "ply after %v", m)
						got, _ := e.PreviousMove()
						testutil.AssertEqual(t, got, prev, "previous move after %v", m)
					}
				}
			}
		})
	}
}
