package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrInvalidMove, ErrInvalidLayout, ErrInvalidNotation,
		ErrGameNotFound, ErrGameArchived, ErrNotYourTurn, ErrInvalidPlayers, ErrInvalidConfig,
	}

	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MoveError
		want string
	}{
		{
			name: "full context",
			err:  &MoveError{Err: ErrInvalidMove, Ply: 3, Notation: "E2E5"},
			want: `ply 3, move "E2E5": invalid move`,
		},
		{
			name: "notation only",
			err:  &MoveError{Err: ErrInvalidNotation, Notation: "Z9"},
			want: `move "Z9": invalid move notation`,
		},
		{
			name: "bare error",
			err:  &MoveError{Err: ErrInvalidMove},
			want: "invalid move",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	var err error = &MoveError{Err: ErrInvalidMove, Ply: 1}
	wrapped := fmt.Errorf("replay: %w", err)

	if !errors.Is(wrapped, ErrInvalidMove) {
		t.Error("errors.Is(wrapped MoveError, ErrInvalidMove) = false, want true")
	}

	var moveErr *MoveError
	if !errors.As(wrapped, &moveErr) {
		t.Fatal("errors.As(wrapped, *MoveError) = false, want true")
	}
	if moveErr.Ply != 1 {
		t.Errorf("moveErr.Ply = %d, want 1", moveErr.Ply)
	}
}

func TestLayoutError(t *testing.T) {
	err := &LayoutError{Err: ErrInvalidLayout, Line: 2, Column: 5, Got: `'x'`}

	msg := err.Error()
	for _, s := range []string{"line 2:5", "'x'", "out of range"} {
		if !strings.Contains(msg, s) {
			t.Errorf("LayoutError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !Is(err, ErrInvalidLayout) {
		t.Error("Is(LayoutError, ErrInvalidLayout) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	err := Wrapf(ErrInvalidConfig, "workers = %d", -1)
	if got, want := err.Error(), "workers = -1: invalid configuration"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
	if !Is(err, ErrInvalidConfig) {
		t.Error("Is(Wrapf(ErrInvalidConfig), ErrInvalidConfig) = false")
	}
}
