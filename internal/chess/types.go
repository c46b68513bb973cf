// Package chess provides core chess types shared by the rules engine and its callers.
package chess

// Colour represents the side owning a piece or having the move.
type Colour int

const (
	NoColour Colour = iota
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'K', 'k':
		return King, true
	case 'Q', 'q':
		return Queen, true
	case 'R', 'r':
		return Rook, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'P', 'p':
		return Pawn, true
	default:
		return NoKind, false
	}
}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// Empty is the content of an unoccupied square.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty returns true if the piece is the empty square marker.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the layout letter: uppercase for White, lowercase for Black, '-' for empty.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '-'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a human readable piece name, e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Constants for board dimensions.
const (
	BoardSize = 8

	// Rows are counted from the top of the board: row 0 is rank 8.
	WhiteBackRow = BoardSize - 1
	BlackBackRow = 0
)

// Location is a square on the board, or the OffBoard marker used for the
// missing half of a sub-move (a captured piece's destination, a promoted
// piece's origin).
type Location struct {
	Col int
	Row int
	Off bool
}

// OffBoard is the location of pieces that leave or enter the board.
var OffBoard = Location{Off: true}

// At returns the on-board location for a column and row.
func At(col, row int) Location {
	return Location{Col: col, Row: row}
}

// OnBoard returns true if the location is a physical square within the 8x8 grid.
func (l Location) OnBoard() bool {
	return !l.Off && l.Col >= 0 && l.Col < BoardSize && l.Row >= 0 && l.Row < BoardSize
}

// Offset returns the location shifted by the given column and row deltas.
// The result may lie outside the grid; check OnBoard before using it.
func (l Location) Offset(dc, dr int) Location {
	return Location{Col: l.Col + dc, Row: l.Row + dr}
}

// String returns the square in notation form (e.g. "E2"), or "--" for OffBoard.
func (l Location) String() string {
	if !l.OnBoard() {
		return "--"
	}
	return string([]byte{byte('A' + l.Col), byte('8' - l.Row)})
}

// HomeRow returns the back row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// Forward returns the row delta of a pawn advance: -1 for White, +1 for Black.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// GameState is the classification of a position for the side to move.
type GameState int

const (
	Normal GameState = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Normal"
	}
}

// IsFinal returns true if no further moves can be played.
func (s GameState) IsFinal() bool {
	return s == Checkmate || s == Stalemate
}
