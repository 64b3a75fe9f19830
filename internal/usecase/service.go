package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/hint"
	"svw.info/steps/internal/ports"
	"svw.info/steps/internal/validator"
)

type Service struct {
	Validator ports.Validator
	Hinter    ports.Hinter
	Index     ports.SolutionIndex
	Solver    ports.Solver
	Generator ports.Generator
	Games     ports.Games
}

func NewService(v ports.Validator, h ports.Hinter, idx ports.SolutionIndex, s ports.Solver, g ports.Generator, games ports.Games) *Service {
	return &Service{Validator: v, Hinter: h, Index: idx, Solver: s, Generator: g, Games: games}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// ErrIllegalMove is returned when a game move would break the placement.
var ErrIllegalMove = errors.New("illegal move")

func (u *Service) Validate(ctx context.Context, placement string) (domain.Report, error) {
	if u.Validator == nil {
		return domain.Report{}, errNotConfigured
	}
	return u.Validator.Validate(ctx, placement)
}

// Viable is pure and needs no provider.
func (u *Service) Viable(ctx context.Context, prefix, objective string) ([]domain.Piece, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hint.ViablePlacements(prefix, objective)
}

func (u *Service) Solutions(ctx context.Context, prefix string) ([]string, error) {
	if u.Index == nil {
		return nil, errNotConfigured
	}
	return u.Index.Solutions(ctx, prefix)
}

func (u *Service) Solve(ctx context.Context, prefix string) (domain.Placement, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, err := domain.ParseTokens(prefix)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solver.Solve(ctx, p)
}

// Game sessions

func (u *Service) NewGame(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Game, ports.Stats, error) {
	if u.Generator == nil || u.Games == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	g, st, err := u.Generator.Generate(ctx, seed, d)
	if err != nil {
		return nil, st, err
	}
	if _, err := u.Games.Create(ctx, g); err != nil {
		return nil, st, err
	}
	return g, st, nil
}

func (u *Service) Game(ctx context.Context, id string) (*domain.Game, error) {
	if u.Games == nil {
		return nil, errNotConfigured
	}
	return u.Games.Load(ctx, id)
}

func (u *Service) Hint(ctx context.Context, id string) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	g, err := u.Game(ctx, id)
	if err != nil {
		return domain.Hint{}, false, err
	}
	return u.Hinter.Hint(ctx, g)
}

// Place plays token in the game. A shape already on the board is moved,
// provided it may be lifted.
func (u *Service) Place(ctx context.Context, id, token string) (*domain.Game, error) {
	p, err := domain.ParsePiece(token)
	if err != nil {
		return nil, err
	}
	g, err := u.Game(ctx, id)
	if err != nil {
		return nil, err
	}
	next := g.Current
	if _, ok := g.Current.Find(p.Shape); ok {
		if err := liftable(g, p.Shape); err != nil {
			return nil, err
		}
		next = g.Current.Without(p.Shape)
	}
	next = append(next[:len(next):len(next)], p)
	var b domain.Board
	if _, err := validator.Replay(&b, next); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIllegalMove, err)
	}
	g.Current = next
	if err := u.Games.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Lift takes a piece off the board.
func (u *Service) Lift(ctx context.Context, id string, s domain.Shape) (*domain.Game, error) {
	g, err := u.Game(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := g.Current.Find(s); !ok {
		return nil, fmt.Errorf("%w: %s is not on the board", ErrIllegalMove, s)
	}
	if err := liftable(g, s); err != nil {
		return nil, err
	}
	g.Current = g.Current.Without(s)
	if err := u.Games.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func liftable(g *domain.Game, s domain.Shape) error {
	if g.Fixed(s) {
		return fmt.Errorf("%w: %s belongs to the starting position", ErrIllegalMove, s)
	}
	if !validator.Removable(g.Current, s) {
		return fmt.Errorf("%w: %s is covered by another piece", ErrIllegalMove, s)
	}
	return nil
}
