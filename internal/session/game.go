// Package session hosts games on top of the rules engine. A game is
// persisted as its ordered move list; the engine is rebuilt by replaying
// that list whenever a move must be validated, so no engine state is
// ever stored or shared between requests.
package session

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// MoveRecord is one accepted move with its metadata.
type MoveRecord struct {
	Notation string    `yaml:"notation"`
	Player   string    `yaml:"player"`
	Comment  string    `yaml:"comment,omitempty"`
	PlayedAt time.Time `yaml:"played_at"`
	Tag      string    `yaml:"tag,omitempty"` // "Check" or "CheckMate" when the move gave one
}

// Game is the persisted form of a hosted game.
type Game struct {
	ID        uuid.UUID    `yaml:"id"`
	White     string       `yaml:"white"`
	Black     string       `yaml:"black"`
	Moves     []MoveRecord `yaml:"moves"`
	State     string       `yaml:"state"`
	Status    string       `yaml:"status"`
	Archived  bool         `yaml:"archived"`
	CreatedAt time.Time    `yaml:"created_at"`
	UpdatedAt time.Time    `yaml:"updated_at"`
}

// Notations returns the move list in replay order.
func (g *Game) Notations() []string {
	out := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		out[i] = m.Notation
	}
	return out
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	c.Moves = slices.Clone(g.Moves)
	return &c
}
