package ports

import (
	"context"
	"time"

	"svw.info/steps/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Validator replays a placement and reports where and why it fails.
type Validator interface {
	Validate(ctx context.Context, placement string) (domain.Report, error)
}

// Solver completes a placement to all eight pieces.
type Solver interface {
	Solve(ctx context.Context, prefix domain.Placement) (domain.Placement, Stats, error)
}

// SolutionIndex lists known full solutions starting with a prefix.
type SolutionIndex interface {
	Solutions(ctx context.Context, prefix string) ([]string, error)
}

// Generator deals a new starting position at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Game, Stats, error)
}

// Hinter suggests the next piece for a game in progress.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Game) (domain.Hint, bool, error)
}

// Corpus provides the raw solution and starting-position lists.
type Corpus interface {
	Solutions(ctx context.Context) ([]string, error)
	Starting(ctx context.Context) ([]string, error)
}

// Games keeps game sessions.
type Games interface {
	Create(ctx context.Context, g *domain.Game) (string, error)
	Load(ctx context.Context, id string) (*domain.Game, error)
	Save(ctx context.Context, g *domain.Game) error
}
