package hint

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/ports"
)

// ErrNoObjective means neither the solution index nor the fallback solver
// produced a final placement for the game.
var ErrNoObjective = errors.New("no solution reachable from this game")

// Hinter picks a final solution compatible with the game and suggests the
// first viable move toward it.
type Hinter struct {
	Index    ports.SolutionIndex
	Fallback ports.Solver

	mu  sync.Mutex
	rng *rand.Rand
}

// NewHinter wires a hinter. Fallback may be nil.
func NewHinter(idx ports.SolutionIndex, fallback ports.Solver, seed int64) *Hinter {
	return &Hinter{Index: idx, Fallback: fallback, rng: rand.New(rand.NewSource(seed))}
}

// Hint returns the suggested piece and every viable alternative. found is
// false when the current placement cannot be continued toward the chosen
// solution.
func (h *Hinter) Hint(ctx context.Context, g *domain.Game) (domain.Hint, bool, error) {
	if g == nil {
		return domain.Hint{}, false, domain.ErrMalformed
	}
	objective, err := h.objective(ctx, g)
	if err != nil {
		return domain.Hint{}, false, err
	}
	goal, err := domain.ParseTokens(objective)
	if err != nil {
		return domain.Hint{}, false, err
	}
	rest, err := Remaining(g.Current, goal)
	if err != nil {
		return domain.Hint{}, false, err
	}
	viable := Viable(g.Current, rest)
	if len(viable) == 0 {
		return domain.Hint{Solution: objective}, false, nil
	}
	return domain.Hint{Piece: viable[0], Viable: viable, Solution: objective}, true, nil
}

// objective chooses a solution that extends the initial placement and
// contains every piece played so far.
func (h *Hinter) objective(ctx context.Context, g *domain.Game) (string, error) {
	if h.Index != nil {
		all, err := h.Index.Solutions(ctx, g.Initial.String())
		if err != nil {
			return "", err
		}
		var fit []string
		for _, s := range all {
			goal, err := domain.ParseTokens(s)
			if err != nil {
				continue
			}
			if _, err := Remaining(g.Current, goal); err == nil {
				fit = append(fit, s)
			}
		}
		if len(fit) > 0 {
			h.mu.Lock()
			i := h.rng.Intn(len(fit))
			h.mu.Unlock()
			return fit[i], nil
		}
	}
	if h.Fallback == nil {
		return "", ErrNoObjective
	}
	done, st, err := h.Fallback.Solve(ctx, g.Current)
	if err != nil {
		return "", errors.Join(ErrNoObjective, err)
	}
	log.Debug().Str("module", "hint").Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("objective from solver")
	return done.String(), nil
}
