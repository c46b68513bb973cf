package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParseMove parses <file><rank><file><rank>[promotion], e.g. "E2E4" or
// "a7a8n". Files A-H map to columns 0-7 and ranks map to rows as
// row = '8' - rank, so rank 8 is row 0. promotion is NoKind when absent.
func ParseMove(text string) (from, to chess.Location, promotion chess.Kind, err error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	invalid := &errors.MoveError{Err: errors.ErrInvalidNotation, Notation: text}

	if len(s) != 4 && len(s) != 5 {
		return chess.OffBoard, chess.OffBoard, chess.NoKind, invalid
	}

	from, okFrom := parseSquare(s[0], s[1])
	to, okTo := parseSquare(s[2], s[3])
	if !okFrom || !okTo {
		return chess.OffBoard, chess.OffBoard, chess.NoKind, invalid
	}

	if len(s) == 5 {
		kind, ok := chess.KindFromLetter(s[4])
		if !ok || kind == chess.King || kind == chess.Pawn {
			return chess.OffBoard, chess.OffBoard, chess.NoKind, invalid
		}
		promotion = kind
	}
	return from, to, promotion, nil
}

// ParseSquare parses a square name such as "E2" or "e2".
func ParseSquare(text string) (chess.Location, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	if len(s) == 2 {
		if loc, ok := parseSquare(s[0], s[1]); ok {
			return loc, nil
		}
	}
	return chess.OffBoard, &errors.MoveError{Err: errors.ErrInvalidNotation, Notation: text}
}

// parseSquare converts a file letter and rank digit to a location.
func parseSquare(file, rank byte) (chess.Location, bool) {
	if file < 'A' || file > 'H' || rank < '1' || rank > '8' {
		return chess.OffBoard, false
	}
	return chess.At(int(file-'A'), int('8'-rank)), true
}

// MakeMoveFromString commits a move given in notation, using the piece
// found on the origin square. A promotion suffix replaces the default
// Queen; a suffix on a move that does not promote is rejected and the
// move is taken back.
func (e *Engine) MakeMoveFromString(text string) error {
	from, to, promotion, err := ParseMove(text)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = len(e.history) + 1
		}
		return err
	}

	piece := e.board.Get(from)
	if piece.IsEmpty() {
		return &errors.MoveError{Err: errors.ErrInvalidMove, Ply: len(e.history) + 1, Notation: text}
	}

	move := chess.Move{Kind: piece.Kind, Colour: piece.Colour, From: from, To: to}
	if err := e.MakeMove(move, true); err != nil {
		return err
	}

	if promotion != chess.NoKind && !e.ChangePromotion(promotion) {
		e.Undo()
		return &errors.MoveError{Err: errors.ErrInvalidNotation, Ply: len(e.history) + 1, Notation: text}
	}
	return nil
}

// Load resets to the starting position and replays the moves in order.
// It stops at the first rejected move; the engine then holds the position
// reached before it.
func (e *Engine) Load(moves []string) error {
	e.Initialize()
	for _, text := range moves {
		if err := e.MakeMoveFromString(text); err != nil {
			return err
		}
	}
	return nil
}

// Replay returns a new engine with the moves played from the starting position.
func Replay(moves []string) (*Engine, error) {
	e := New()
	if err := e.Load(moves); err != nil {
		return nil, err
	}
	return e, nil
}
