package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/ports"
	"svw.info/steps/internal/validator"
)

// Solve extends prefix to all eight pieces. The prefix itself must replay
// cleanly; its order is kept and the added pieces follow it.
func (s *BacktrackingSolver) Solve(ctx context.Context, prefix domain.Placement) (domain.Placement, ports.Stats, error) {
	start := time.Now()
	var b domain.Board
	if _, err := validator.Replay(&b, prefix); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	used := prefix.Shapes()
	if len(prefix) != popcount(used) {
		return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w: %s", domain.ErrDuplicateShape, prefix)
	}
	seq := append(domain.Placement(nil), prefix...)
	nodes := 0
	var dfs func(b domain.Board, used uint8, cursor, skips int) bool
	dfs = func(b domain.Board, used uint8, cursor, skips int) bool {
		if ctx.Err() != nil {
			return false
		}
		if used == allShapes {
			return true
		}
		x := nextEmpty(&b, cursor)
		if x >= domain.BoardCells {
			return false
		}
		for _, p := range candidates(used, x, nil) {
			nodes++
			next := b
			if validator.Place(&next, p) != nil {
				continue
			}
			seq = append(seq, p)
			if dfs(next, used|1<<p.Shape, x+1, skips) {
				return true
			}
			seq = seq[:len(seq)-1]
		}
		if skips < s.MaxSkips {
			return dfs(b, used, x+1, skips+1)
		}
		return false
	}
	ok := dfs(b, used, 0, 0)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if !ok {
		return nil, st, ErrNoSolution
	}
	return seq, st, nil
}

func popcount(m uint8) int {
	n := 0
	for ; m != 0; m &= m - 1 {
		n++
	}
	return n
}
