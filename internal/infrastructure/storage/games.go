package storage

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"svw.info/steps/internal/domain"
)

// ErrNotFound is returned for unknown game ids.
var ErrNotFound = errors.New("game not found")

// MemoryGames keeps game sessions for the lifetime of the process.
type MemoryGames struct {
	mu    sync.RWMutex
	games map[string]domain.Game
}

func NewMemoryGames() *MemoryGames {
	return &MemoryGames{games: make(map[string]domain.Game)}
}

// Create stores g under a fresh id, sets g.ID and returns it.
func (s *MemoryGames) Create(ctx context.Context, g *domain.Game) (string, error) {
	if g == nil {
		return "", errors.New("invalid game: nil")
	}
	g.ID = uuid.NewString()
	s.mu.Lock()
	s.games[g.ID] = clone(g)
	s.mu.Unlock()
	return g.ID, nil
}

func (s *MemoryGames) Load(ctx context.Context, id string) (*domain.Game, error) {
	s.mu.RLock()
	g, ok := s.games[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	out := clone(&g)
	return &out, nil
}

// Save replaces an existing game.
func (s *MemoryGames) Save(ctx context.Context, g *domain.Game) error {
	if g == nil || g.ID == "" {
		return errors.New("invalid game: missing ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[g.ID]; !ok {
		return ErrNotFound
	}
	s.games[g.ID] = clone(g)
	return nil
}

func clone(g *domain.Game) domain.Game {
	out := *g
	out.Initial = append(domain.Placement(nil), g.Initial...)
	out.Current = append(domain.Placement(nil), g.Current...)
	return out
}
