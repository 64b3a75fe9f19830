package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/ports"
	"svw.info/steps/internal/validator"
)

// ErrNoStart means the tier band held no usable starting position.
var ErrNoStart = errors.New("no starting position for difficulty")

// Band returns the half-open range of the starting list that belongs to d.
// The list is split into equal bands in tier order; the remainder goes to the
// last tier.
func Band(n int, d domain.Difficulty) (lo, hi int) {
	size := n / domain.DifficultyCount
	lo = int(d) * size
	hi = lo + size
	if d == domain.DifficultyCount-1 {
		hi = n
	}
	return lo, hi
}

// Generate picks a starting position of the requested difficulty using seed.
// Candidates in the band are tried in a seeded random order until one parses,
// replays cleanly and, when a solver is configured, can be completed.
func (g *CorpusGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Game, ports.Stats, error) {
	start := time.Now()
	if diff < 0 || diff >= domain.DifficultyCount {
		return nil, ports.Stats{}, fmt.Errorf("%w: difficulty %d", domain.ErrMalformed, diff)
	}
	lines, err := g.Corpus.Starting(ctx)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	lo, hi := Band(len(lines), diff)
	if hi <= lo {
		return nil, ports.Stats{}, fmt.Errorf("%w: %s", ErrNoStart, diff)
	}
	rng := rand.New(rand.NewSource(seed))
	order := rng.Perm(hi - lo)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for _, i := range order {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		if time.Now().After(deadline) {
			break
		}
		initial, err := domain.ParsePlacement(lines[lo+i])
		if err != nil {
			continue
		}
		var b domain.Board
		if _, err := validator.Replay(&b, initial); err != nil {
			continue
		}
		if g.Solver != nil {
			_, st, err := g.Solver.Solve(ctx, initial)
			nodes += st.Nodes
			if err != nil {
				continue
			}
		}
		game := &domain.Game{
			Seed:       seed,
			Difficulty: diff,
			Initial:    initial,
			Current:    append(domain.Placement(nil), initial...),
			CreatedAt:  time.Now().UnixNano(),
		}
		return game, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, fmt.Errorf("%w: %s", ErrNoStart, diff)
}
