package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// sq converts a square name such as "E2" to a location.
func sq(t *testing.T, name string) chess.Location {
	t.Helper()
	loc, err := ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return loc
}

// mustReplay plays the moves from the starting position.
func mustReplay(t *testing.T, moves ...string) *Engine {
	t.Helper()
	e, err := Replay(moves)
	if err != nil {
		t.Fatalf("Replay(%v) error: %v", moves, err)
	}
	return e
}

// mustLayout returns an engine holding the layout with the given side to move.
func mustLayout(t *testing.T, layout string, toMove chess.Colour) *Engine {
	t.Helper()
	e := New()
	if err := e.SetBoard(layout); err != nil {
		t.Fatalf("SetBoard error: %v\n%s", err, layout)
	}
	e.SetCurrentPlayer(toMove)
	return e
}

// notations renders moves in sorted 4-character notation.
func notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

// findMove returns the generated move with the given notation.
func findMove(t *testing.T, moves []chess.Move, notation string) chess.Move {
	t.Helper()
	for _, m := range moves {
		if m.String() == notation {
			return m
		}
	}
	t.Fatalf("move %s not in %v", notation, notations(moves))
	return chess.Move{}
}

// Layouts shared by several tests.
const (
	kiwipeteLayout = `r---k--r
p-ppqpb-
bn--pnp-
---PN---
-p--P---
--N--Q-p
PPPBBPPP
R---K--R`

	endgameLayout = `--------
--p-----
---p----
KP-----r
-R---p-k
--------
----P-P-
--------`

	castlingLayout = `r---k--r
pppppppp
--------
--------
--------
--------
PPPPPPPP
R---K--R`
)
