package chess

// Board is the 8x8 grid of pieces, indexed as Squares[col][row].
// It is a value type: assigning a Board copies its storage.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// Get returns the piece at the location. Off-board locations read as Empty.
func (b *Board) Get(loc Location) Piece {
	if !loc.OnBoard() {
		return Empty
	}
	return b.Squares[loc.Col][loc.Row]
}

// Set places a piece at the location. Setting an off-board location is a no-op.
func (b *Board) Set(loc Location, piece Piece) {
	if loc.OnBoard() {
		b.Squares[loc.Col][loc.Row] = piece
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[col][BlackBackRow] = B(backRank[col])
		b.Squares[col][BlackBackRow+1] = B(Pawn)
		b.Squares[col][WhiteBackRow-1] = W(Pawn)
		b.Squares[col][WhiteBackRow] = W(backRank[col])
	}
}

// FindKing returns the location of the king of the given colour.
func (b *Board) FindKing(colour Colour) (Location, bool) {
	king := Piece{Colour: colour, Kind: King}
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			if b.Squares[col][row] == king {
				return At(col, row), true
			}
		}
	}
	return OffBoard, false
}
