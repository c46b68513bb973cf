package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates pushes, double pushes from the starting row,
// diagonal captures and en passant. A pawn reaching the far row is
// tagged Promotion whether it pushes or captures.
func (e *Engine) pawnMoves(from chess.Location, colour chess.Colour) []chess.Move {
	pawn := chess.Piece{Colour: colour, Kind: chess.Pawn}
	dir := chess.Forward(colour)
	farRow := chess.HomeRow(colour.Opposite())
	startRow := chess.HomeRow(colour) + dir

	var moves []chess.Move

	one := from.Offset(0, dir)
	if one.OnBoard() && e.board.Get(one).IsEmpty() {
		m := e.newMove(pawn, from, one)
		if one.Row == farRow {
			m.Special = chess.Promotion
		}
		moves = append(moves, m)

		// Double push from starting row
		two := from.Offset(0, 2*dir)
		if from.Row == startRow && e.board.Get(two).IsEmpty() {
			moves = append(moves, e.newMove(pawn, from, two))
		}
	}

	for _, dc := range pawnCaptureDcs {
		to := from.Offset(dc, dir)
		target := e.board.Get(to)
		if !to.OnBoard() || target.IsEmpty() || target.Colour == colour {
			continue
		}
		m := e.newMove(pawn, from, to)
		if to.Row == farRow {
			m.Special = chess.Promotion
		}
		moves = append(moves, m)
	}

	if to, ok := e.enPassantTarget(from, colour); ok {
		moves = append(moves, chess.Move{
			Kind:    chess.Pawn,
			Colour:  colour,
			From:    from,
			To:      to,
			Special: chess.EnPassant,
		})
	}

	return moves
}

// enPassantTarget returns the square a pawn at from may capture en passant
// to. This is possible only when the previous turn was an opposing pawn's
// two-square advance that landed beside it on the same row.
func (e *Engine) enPassantTarget(from chess.Location, colour chess.Colour) (chess.Location, bool) {
	prev, ok := e.PreviousMove()
	if !ok || prev.Kind != chess.Pawn || prev.Colour == colour {
		return chess.OffBoard, false
	}
	if abs(prev.To.Row-prev.From.Row) != 2 || prev.To.Row != from.Row || abs(prev.To.Col-from.Col) != 1 {
		return chess.OffBoard, false
	}
	if e.board.Get(prev.To) != (chess.Piece{Colour: prev.Colour, Kind: chess.Pawn}) {
		return chess.OffBoard, false
	}
	return chess.At(prev.To.Col, from.Row+chess.Forward(colour)), true
}

// skippedSquare returns the square passed over by a two-square pawn advance.
func skippedSquare(m chess.Move) (chess.Location, bool) {
	if m.Kind != chess.Pawn || abs(m.To.Row-m.From.Row) != 2 {
		return chess.OffBoard, false
	}
	return chess.At(m.From.Col, (m.From.Row+m.To.Row)/2), true
}
