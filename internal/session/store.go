package session

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Store persists games.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*Game, error)
	Put(ctx context.Context, g *Game) error
	List(ctx context.Context) ([]*Game, error)
}

// MemoryStore is a thread-safe in-memory Store. It hands out copies, so
// callers may modify the games they receive.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Game
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[uuid.UUID]*Game)}
}

// Get returns a copy of the game, or ErrGameNotFound.
func (s *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return g.Clone(), nil
}

// Put stores a copy of the game, replacing any game with the same ID.
func (s *MemoryStore) Put(ctx context.Context, g *Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games[g.ID] = g.Clone()
	return nil
}

// List returns copies of every game, oldest first.
func (s *MemoryStore) List(ctx context.Context) ([]*Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]*Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g.Clone())
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].CreatedAt.Before(games[j].CreatedAt)
		}
		return games[i].ID.String() < games[j].ID.String()
	})
	return games, nil
}
