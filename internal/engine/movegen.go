package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables, as (column, row) deltas.
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs      = append(append([][2]int{}, diagonalDirs...), straightDirs...)
	pawnCaptureDcs = []int{-1, 1}
)

// pseudoMoves returns the candidate moves of the piece at from, obeying
// movement patterns and occupancy but not king safety. Castling
// candidates are only generated when withCastling is set; threat scans
// leave it off since castling never attacks a square.
func (e *Engine) pseudoMoves(from chess.Location, withCastling bool) []chess.Move {
	piece := e.board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	var moves []chess.Move
	switch piece.Kind {
	case chess.Pawn:
		moves = e.pawnMoves(from, piece.Colour)
	case chess.Knight:
		moves = e.stepMoves(from, piece, knightOffsets)
	case chess.Bishop:
		moves = e.slidingMoves(from, piece, diagonalDirs)
	case chess.Rook:
		moves = e.slidingMoves(from, piece, straightDirs)
	case chess.Queen:
		moves = e.slidingMoves(from, piece, queenDirs)
	case chess.King:
		moves = e.stepMoves(from, piece, kingOffsets)
		if withCastling {
			moves = append(moves, e.castlingMoves(from, piece.Colour)...)
		}
	}
	return e.dropBlocked(moves)
}

// dropBlocked discards moves landing off the board or on a piece of the mover's side.
func (e *Engine) dropBlocked(moves []chess.Move) []chess.Move {
	kept := moves[:0]
	for _, m := range moves {
		if !m.To.OnBoard() {
			continue
		}
		if target := e.board.Get(m.To); !target.IsEmpty() && target.Colour == m.Colour {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// newMove builds a relocation record, tagging it as a capture when the
// destination holds an opposing piece.
func (e *Engine) newMove(piece chess.Piece, from, to chess.Location) chess.Move {
	m := chess.Move{Kind: piece.Kind, Colour: piece.Colour, From: from, To: to}
	if target := e.board.Get(to); !target.IsEmpty() && target.Colour != piece.Colour {
		m.Special = chess.Capture
	}
	return m
}

// stepMoves generates single-step moves for knights and kings.
func (e *Engine) stepMoves(from chess.Location, piece chess.Piece, offsets [][2]int) []chess.Move {
	moves := make([]chess.Move, 0, len(offsets))
	for _, off := range offsets {
		moves = append(moves, e.newMove(piece, from, from.Offset(off[0], off[1])))
	}
	return moves
}

// slidingMoves ray-casts in each direction, stopping at the board edge or
// at the first occupied square, which is included.
func (e *Engine) slidingMoves(from chess.Location, piece chess.Piece, dirs [][2]int) []chess.Move {
	var moves []chess.Move
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.OnBoard() {
			moves = append(moves, e.newMove(piece, from, to))
			if !e.board.Get(to).IsEmpty() {
				break // Blocked
			}
			to = to.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// attackMoves returns the moves that threaten squares. Pawns threaten
// their diagonals whether or not a piece stands there, and never threaten
// with a push; every other piece threatens its pseudo-legal destinations.
func (e *Engine) attackMoves(from chess.Location) []chess.Move {
	piece := e.board.Get(from)
	if piece.Kind != chess.Pawn {
		return e.pseudoMoves(from, false)
	}
	moves := make([]chess.Move, 0, len(pawnCaptureDcs))
	for _, dc := range pawnCaptureDcs {
		to := from.Offset(dc, chess.Forward(piece.Colour))
		moves = append(moves, e.newMove(piece, from, to))
	}
	return e.dropBlocked(moves)
}
