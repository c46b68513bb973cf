package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// kingHomeCol is the king's starting column (the e-file).
const kingHomeCol = 4

// castleSide describes one castling option by its rook's corner column
// and the direction the king travels.
type castleSide struct {
	rookCol int
	step    int
}

var (
	kingside  = castleSide{rookCol: chess.BoardSize - 1, step: 1}
	queenside = castleSide{rookCol: 0, step: -1}
)

// CastlingRights is the set of castling options still open to both sides.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// castlingRightBits pairs each right with its side, in FEN order.
var castlingRightBits = []struct {
	right  CastlingRights
	colour chess.Colour
	side   castleSide
	letter byte
}{
	{WhiteKingside, chess.White, kingside, 'K'},
	{WhiteQueenside, chess.White, queenside, 'Q'},
	{BlackKingside, chess.Black, kingside, 'k'},
	{BlackQueenside, chess.Black, queenside, 'q'},
}

// CastlingRights reports which castling moves remain possible in principle:
// king and rook unmoved and in place. Attacks and blocked paths are ignored.
func (e *Engine) CastlingRights() CastlingRights {
	var rights CastlingRights
	for _, r := range castlingRightBits {
		if e.hasCastlingRight(r.colour, r.side) {
			rights |= r.right
		}
	}
	return rights
}

// castlingMoves generates the castling candidates of a king on its home square.
// Rights come from a scan of the whole history rather than cached flags.
func (e *Engine) castlingMoves(from chess.Location, colour chess.Colour) []chess.Move {
	home := chess.At(kingHomeCol, chess.HomeRow(colour))
	if from != home || e.hasKingMoved(colour) {
		return nil
	}

	var moves []chess.Move
	var attacked map[chess.Location]bool
	for _, side := range []castleSide{kingside, queenside} {
		if !e.hasCastlingRight(colour, side) || !e.isPathClear(home, side) {
			continue
		}

		if attacked == nil {
			attacked = e.attackedSquares(colour.Opposite())
		}
		if attacked[home] || attacked[home.Offset(side.step, 0)] || attacked[home.Offset(2*side.step, 0)] {
			continue
		}

		moves = append(moves, chess.Move{
			Kind:    chess.King,
			Colour:  colour,
			From:    home,
			To:      home.Offset(2*side.step, 0),
			Special: chess.Castling,
		})
	}
	return moves
}

// hasCastlingRight reports whether the side's king and the given rook have
// never moved, and the rook still stands on its corner.
func (e *Engine) hasCastlingRight(colour chess.Colour, side castleSide) bool {
	home := chess.At(kingHomeCol, chess.HomeRow(colour))
	if e.board.Get(home) != (chess.Piece{Colour: colour, Kind: chess.King}) || e.hasKingMoved(colour) {
		return false
	}
	corner := chess.At(side.rookCol, home.Row)
	if e.board.Get(corner) != (chess.Piece{Colour: colour, Kind: chess.Rook}) {
		return false
	}
	return !e.hasRookLeft(colour, corner)
}

// hasKingMoved scans every frame for a primary move by the side's king.
func (e *Engine) hasKingMoved(colour chess.Colour) bool {
	for i := range e.history {
		p := e.history[i].Primary()
		if p.Kind == chess.King && p.Colour == colour {
			return true
		}
	}
	return false
}

// hasRookLeft scans every record for a rook of the side leaving the corner,
// either by moving or by being captured there.
func (e *Engine) hasRookLeft(colour chess.Colour, corner chess.Location) bool {
	for i := range e.history {
		for _, m := range e.history[i].Moves {
			if m.Kind == chess.Rook && m.Colour == colour && m.From == corner {
				return true
			}
		}
	}
	return false
}

// isPathClear reports whether every square strictly between king and rook is empty.
func (e *Engine) isPathClear(home chess.Location, side castleSide) bool {
	for col := home.Col + side.step; col != side.rookCol; col += side.step {
		if !e.board.Get(chess.At(col, home.Row)).IsEmpty() {
			return false
		}
	}
	return true
}

// castlingRook returns the rook relocation implied by a castling king move.
func castlingRook(king chess.Move) (from, to chess.Location) {
	side := queenside
	if king.To.Col > king.From.Col {
		side = kingside
	}
	return chess.At(side.rookCol, king.From.Row), king.From.Offset(side.step, 0)
}
