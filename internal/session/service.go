package session

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Service is the authority for hosted games. Every call that needs the
// position replays the stored move list on a private engine.
type Service struct {
	store Store
	cfg   *config.Config
	now   func() time.Time

	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// lock serializes read-modify-write cycles on one game and returns the
// matching unlock.
func (s *Service) lock(id uuid.UUID) func() {
	v, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func checkPlayers(white, black string) error {
	if white == "" || black == "" || white == black {
		return errors.Wrapf(errors.ErrInvalidPlayers, "got %q and %q", white, black)
	}
	return nil
}

// NewService creates a service backed by the store.
func NewService(store Store, cfg *config.Config) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// NewGame creates and stores a game between two named players.
func (s *Service) NewGame(ctx context.Context, white, black string) (*Game, error) {
	if err := checkPlayers(white, black); err != nil {
		return nil, errors.Wrap(err, "new game")
	}

	now := s.now()
	g := &Game{
		ID:        uuid.New(),
		White:     white,
		Black:     black,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.refresh(g, engine.New())

	if err := s.store.Put(ctx, g); err != nil {
		return nil, errors.Wrap(err, "storing game")
	}
	s.cfg.Logf(2, "game %s created: %s vs %s", g.ID, white, black)
	return g, nil
}

// SubmitMove validates a move by the named player and appends it to the
// game. The game is archived once it reaches checkmate or stalemate.
func (s *Service) SubmitMove(ctx context.Context, id uuid.UUID, player, notation, comment string) (*Game, error) {
	unlock := s.lock(id)
	defer unlock()

	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Archived {
		return nil, errors.Wrapf(errors.ErrGameArchived, "game %s", id)
	}
	if limit := s.cfg.Session.HistoryLimit; limit > 0 && len(g.Moves) >= limit {
		return nil, errors.Wrapf(errors.ErrInvalidMove, "game %s reached its limit of %d moves", id, limit)
	}

	e, err := replay(g)
	if err != nil {
		return nil, err
	}
	if want := playerFor(g, e.CurrentPlayer()); player != want {
		return nil, errors.Wrapf(errors.ErrNotYourTurn, "%s to move, not %s", want, player)
	}

	text := strings.ToUpper(strings.TrimSpace(notation))
	if err := e.MakeMoveFromString(text); err != nil {
		s.cfg.Logf(2, "game %s: rejected %s from %s: %v", id, text, player, err)
		return nil, err
	}
	text = s.applyDefaultPromotion(e, text)

	state := e.GetBoardState()
	record := MoveRecord{
		Notation: text,
		Player:   player,
		Comment:  comment,
		PlayedAt: s.now(),
	}
	switch state {
	case chess.Check:
		record.Tag = chess.CheckMove.String()
	case chess.Checkmate:
		record.Tag = chess.CheckMateMove.String()
	}

	g.Moves = append(g.Moves, record)
	g.UpdatedAt = record.PlayedAt
	s.refresh(g, e)

	if err := s.store.Put(ctx, g); err != nil {
		return nil, errors.Wrap(err, "storing game")
	}
	s.cfg.Logf(2, "game %s: %s played %s", id, player, text)
	if g.Archived {
		s.cfg.Logf(1, "game %s archived: %s", id, g.Status)
	}
	return g, nil
}

// applyDefaultPromotion replaces the engine's Queen with the configured
// piece when an unsuffixed move promoted, and returns the notation that
// reproduces the move on replay.
func (s *Service) applyDefaultPromotion(e *engine.Engine, text string) string {
	kind := s.cfg.Session.PromotionKind()
	if len(text) != 4 || kind == chess.Queen {
		return text
	}
	if prev, ok := e.PreviousMove(); !ok || prev.Special != chess.Promotion {
		return text
	}
	e.ChangePromotion(kind)
	return text + string(kind.Letter())
}

// AvailableMoves returns the legal moves from a square, or of the whole
// side to move when square is empty, in sorted notation.
func (s *Service) AvailableMoves(ctx context.Context, id uuid.UUID, square string) ([]string, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e, err := replay(g)
	if err != nil {
		return nil, err
	}

	var moves []chess.Move
	if square == "" {
		moves = e.GetAllAvailableMoves()
	} else {
		loc, err := engine.ParseSquare(square)
		if err != nil {
			return nil, err
		}
		moves = e.GetAvailableMoves(loc)
	}
	return Notations(moves), nil
}

// Status returns the human-readable status line of the game.
func (s *Service) Status(ctx context.Context, id uuid.UUID) (string, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return g.Status, nil
}

// Export writes the game as YAML.
func (s *Service) Export(ctx context.Context, id uuid.UUID, w io.Writer) error {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "encoding game")
	}
	_, err = w.Write(data)
	return err
}

// Import reads a YAML game, checks its move list by replaying it and
// stores it. State, status and archival are recomputed from the moves.
// A game without an ID is given a new one.
func (s *Service) Import(ctx context.Context, r io.Reader) (*Game, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading game")
	}
	g := &Game{}
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, errors.Wrap(err, "decoding game")
	}
	if err := checkPlayers(g.White, g.Black); err != nil {
		return nil, errors.Wrap(err, "importing game")
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	unlock := s.lock(g.ID)
	defer unlock()

	e, err := replay(g)
	if err != nil {
		return nil, err
	}
	s.refresh(g, e)

	if err := s.store.Put(ctx, g); err != nil {
		return nil, errors.Wrap(err, "storing game")
	}
	s.cfg.Logf(2, "game %s imported with %d moves", g.ID, len(g.Moves))
	return g, nil
}

// refresh recomputes the derived fields from the replayed position.
func (s *Service) refresh(g *Game, e *engine.Engine) {
	state := e.GetBoardState()
	g.State = state.String()
	g.Status = statusLine(g, e.CurrentPlayer(), state)
	g.Archived = state.IsFinal()
}

// replay rebuilds the position of a stored game.
func replay(g *Game) (*engine.Engine, error) {
	e := engine.New()
	if err := e.Load(g.Notations()); err != nil {
		return nil, errors.Wrapf(err, "replaying game %s", g.ID)
	}
	return e, nil
}

// playerFor returns the name of the player holding the colour.
func playerFor(g *Game, colour chess.Colour) string {
	if colour == chess.Black {
		return g.Black
	}
	return g.White
}

// statusLine composes the status shown to players.
func statusLine(g *Game, toMove chess.Colour, state chess.GameState) string {
	switch state {
	case chess.Check:
		return fmt.Sprintf("%s (%s) to move, in check", playerFor(g, toMove), toMove)
	case chess.Checkmate:
		winner := toMove.Opposite()
		return fmt.Sprintf("Checkmate, %s (%s) wins", playerFor(g, winner), winner)
	case chess.Stalemate:
		return "Stalemate, draw"
	default:
		return fmt.Sprintf("%s (%s) to move", playerFor(g, toMove), toMove)
	}
}

// Notations renders moves in sorted 4-character notation.
func Notations(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
