package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MakeMove commits a move. The move is matched by origin, destination,
// colour and kind against the moves generated from its origin square:
// legal moves of the side to move when validateCheck is set, otherwise
// the pseudo-legal candidates of whichever piece stands there. The
// special-move tag of the request is ignored; the generated tag decides
// how the turn is expanded.
func (e *Engine) MakeMove(move chess.Move, validateCheck bool) error {
	invalid := &errors.MoveError{
		Err:      errors.ErrInvalidMove,
		Ply:      len(e.history) + 1,
		Notation: move.String(),
	}
	if !move.From.OnBoard() || !move.To.OnBoard() {
		return invalid
	}

	var candidates []chess.Move
	if validateCheck {
		if move.Colour != e.toMove {
			return invalid
		}
		candidates = e.legalMoves(move.From)
	} else {
		candidates = e.pseudoMoves(move.From, true)
	}

	i := slices.IndexFunc(candidates, move.SameMove)
	if i < 0 {
		return invalid
	}
	e.execute(candidates[i])
	return nil
}

// execute applies a generated move without any validation. It expands
// the move into ordered sub-move records and pushes them as one frame.
//
// The primary relocation is always the first record and a captured piece
// is always recorded after it: Undo replays records in insertion order,
// so the destination is cleared before the captured piece is put back.
func (e *Engine) execute(m chess.Move) {
	piece := e.board.Get(m.From)
	frame := chess.Frame{
		Moves: []chess.Move{m},
		Changes: []chess.BoardChange{
			{Location: m.From, Role: chess.PreviousMoveFrom},
			{Location: m.To, Role: chess.PreviousMoveTo},
		},
	}

	switch m.Special {
	case chess.EnPassant:
		captured := chess.At(m.To.Col, m.From.Row)
		frame.Moves = append(frame.Moves, chess.Move{
			Kind:    chess.Pawn,
			Colour:  m.Colour.Opposite(),
			From:    captured,
			To:      chess.OffBoard,
			Special: chess.Capture,
		})
		frame.Changes = append(frame.Changes, chess.BoardChange{Location: captured, Role: chess.ChangeCapture})
		e.board.Set(captured, chess.Empty)

	case chess.Castling:
		rookFrom, rookTo := castlingRook(m)
		frame.Moves = append(frame.Moves, chess.Move{
			Kind:    chess.Rook,
			Colour:  m.Colour,
			From:    rookFrom,
			To:      rookTo,
			Special: chess.Castling,
		})
		e.board.Set(rookTo, e.board.Get(rookFrom))
		e.board.Set(rookFrom, chess.Empty)

	case chess.Promotion:
		frame.Moves = append(frame.Moves,
			chess.Move{Kind: chess.Pawn, Colour: m.Colour, From: m.From, To: chess.OffBoard, Special: chess.PromotionOut},
			chess.Move{Kind: chess.Queen, Colour: m.Colour, From: chess.OffBoard, To: m.To, Special: chess.PromotionIn},
		)
		piece = chess.Piece{Colour: m.Colour, Kind: chess.Queen}
		e.board.Set(m.From, piece)
	}

	if target := e.board.Get(m.To); !target.IsEmpty() {
		frame.Moves = append(frame.Moves, chess.Move{
			Kind:    target.Kind,
			Colour:  target.Colour,
			From:    m.To,
			To:      chess.OffBoard,
			Special: chess.Capture,
		})
		frame.Changes = append(frame.Changes, chess.BoardChange{Location: m.To, Role: chess.ChangeCapture})
	}

	e.board.Set(m.To, piece)
	e.board.Set(m.From, chess.Empty)

	e.toMove = e.toMove.Opposite()
	e.history = append(e.history, frame)
}
