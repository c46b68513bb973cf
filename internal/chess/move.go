package chess

// SpecialMove tags a move record with the rule that produced it.
type SpecialMove int

const (
	NoSpecial SpecialMove = iota
	Capture
	Castling
	EnPassant
	Promotion
	PromotionOut
	PromotionIn
	CheckMove
	CheckMateMove
)

// String returns the string representation of a special move tag.
func (s SpecialMove) String() string {
	names := []string{"None", "Capture", "Castling", "EnPassant", "Promotion",
		"PromotionOut", "PromotionIn", "Check", "CheckMate"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// Move is a single relocation record. A turn is made of one primary Move
// followed by zero or more sub-moves (rook relocation, captured piece,
// promotion swap).
type Move struct {
	Kind    Kind
	Colour  Colour
	From    Location
	To      Location
	Special SpecialMove
}

// Piece returns the piece described by the record.
func (m Move) Piece() Piece {
	return Piece{Colour: m.Colour, Kind: m.Kind}
}

// SameMove reports whether two moves describe the same relocation, ignoring the tag.
func (m Move) SameMove(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Colour == o.Colour && m.Kind == o.Kind
}

// IsCapture returns true if the record removes a piece from the board.
func (m Move) IsCapture() bool {
	return m.Special == Capture || m.Special == EnPassant
}

// String returns the move in 4-character notation, e.g. "E2E4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ChangeRole is the UI role of a square touched by the last turn.
type ChangeRole int

const (
	ChangeCapture ChangeRole = iota
	PreviousMoveFrom
	PreviousMoveTo
)

// String returns the string representation of a change role.
func (r ChangeRole) String() string {
	switch r {
	case ChangeCapture:
		return "Capture"
	case PreviousMoveFrom:
		return "PreviousMoveFrom"
	case PreviousMoveTo:
		return "PreviousMoveTo"
	default:
		return "Unknown"
	}
}

// BoardChange marks a square for highlighting.
type BoardChange struct {
	Location Location
	Role     ChangeRole
}

// Frame is one committed turn: its ordered sub-moves and board changes.
// The two lists are always pushed and popped together.
type Frame struct {
	Moves   []Move
	Changes []BoardChange
}

// Primary returns the relocation record that started the turn.
func (f *Frame) Primary() Move {
	return f.Moves[0]
}

// Captured returns the piece removed from the board during the turn, if any.
func (f *Frame) Captured() (Piece, bool) {
	for _, m := range f.Moves[1:] {
		if m.Special == Capture {
			return m.Piece(), true
		}
	}
	return Empty, false
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	c := Frame{
		Moves:   make([]Move, len(f.Moves)),
		Changes: make([]BoardChange, len(f.Changes)),
	}
	copy(c.Moves, f.Moves)
	copy(c.Changes, f.Changes)
	return c
}
