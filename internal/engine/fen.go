package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN exports the position. Castling rights come from the history scan
// and the en passant target from the previous move. The engine keeps no
// clocks, so the counters are always "0 1".
func (e *Engine) FEN() string {
	var sb strings.Builder

	e.writePiecePositions(&sb)
	sb.WriteByte(' ')
	e.writeSideToMove(&sb)
	sb.WriteByte(' ')
	e.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	e.writeEnPassant(&sb)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (e *Engine) writePiecePositions(sb *strings.Builder) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := e.board.Get(chess.At(col, row))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func (e *Engine) writeSideToMove(sb *strings.Builder) {
	if e.toMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (e *Engine) writeCastlingRights(sb *strings.Builder) {
	rights := e.CastlingRights()
	if rights == 0 {
		sb.WriteByte('-')
		return
	}
	for _, r := range castlingRightBits {
		if rights&r.right != 0 {
			sb.WriteByte(r.letter)
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func (e *Engine) writeEnPassant(sb *strings.Builder) {
	target, ok := e.EnPassantTarget()
	if !ok {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(strings.ToLower(target.String()))
}

// EnPassantTarget returns the square skipped by a double pawn advance on
// the previous turn, whether or not a capture onto it is possible.
func (e *Engine) EnPassantTarget() (chess.Location, bool) {
	prev, ok := e.PreviousMove()
	if !ok {
		return chess.OffBoard, false
	}
	return skippedSquare(prev)
}
