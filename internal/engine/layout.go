package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialLayout is the layout of the standard starting position.
const InitialLayout = `rnbqkbnr
pppppppp
--------
--------
--------
--------
PPPPPPPP
RNBQKBNR
`

// SetBoard installs a textual layout: eight lines of eight characters,
// first line = rank 8. Uppercase letters are White, lowercase Black and
// '-' is an empty square. The history is cleared and the side to move is
// kept. On error the engine is left unchanged.
func (e *Engine) SetBoard(layout string) error {
	board, err := parseLayout(layout)
	if err != nil {
		return err
	}
	e.board = board
	e.history = nil
	return nil
}

// parseLayout converts layout text into a grid.
func parseLayout(layout string) (chess.Board, error) {
	var board chess.Board

	text := strings.TrimSpace(strings.ReplaceAll(layout, "\r\n", "\n"))
	lines := strings.Split(text, "\n")
	if len(lines) != chess.BoardSize {
		return board, &errors.LayoutError{
			Err:  errors.ErrInvalidLayout,
			Line: len(lines),
			Got:  fmt.Sprintf("%d rows", len(lines)),
		}
	}

	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != chess.BoardSize {
			return board, &errors.LayoutError{
				Err:  errors.ErrInvalidLayout,
				Line: row + 1,
				Got:  fmt.Sprintf("%d columns", len(line)),
			}
		}
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := pieceFromLetter(line[col])
			if !ok {
				return board, &errors.LayoutError{
					Err:    errors.ErrInvalidLayout,
					Line:   row + 1,
					Column: col + 1,
					Got:    fmt.Sprintf("%q", line[col]),
				}
			}
			board.Set(chess.At(col, row), piece)
		}
	}
	return board, nil
}

// pieceFromLetter converts a layout character to a piece.
func pieceFromLetter(c byte) (chess.Piece, bool) {
	if c == '-' {
		return chess.Empty, true
	}
	kind, ok := chess.KindFromLetter(c)
	if !ok {
		return chess.Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return chess.B(kind), true
	}
	return chess.W(kind), true
}

// String renders the grid in layout form, one line per rank starting at rank 8.
func (e *Engine) String() string {
	var sb strings.Builder
	sb.Grow((chess.BoardSize + 1) * chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(e.board.Get(chess.At(col, row)).Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
