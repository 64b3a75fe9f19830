package solver

import (
	"errors"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/geometry"
)

// DefaultMaxSkips bounds how many empty cells one branch may leave uncovered.
const DefaultMaxSkips = 7

// ErrNoSolution means the search space was exhausted without completing the
// placement.
var ErrNoSolution = errors.New("no completion found")

// BacktrackingSolver completes a placement by covering the lowest empty cell
// first.
type BacktrackingSolver struct {
	MaxSkips int
}

func NewBacktrackingSolver() *BacktrackingSolver {
	return &BacktrackingSolver{MaxSkips: DefaultMaxSkips}
}

// --- helpers used by Solve ---

// candidates appends every piece of a shape not in used that puts a ring on
// cell x, in shape, orientation, footprint order.
func candidates(used uint8, x int, out []domain.Piece) []domain.Piece {
	for s := domain.Shape(0); s < domain.ShapeCount; s++ {
		if used&(1<<s) != 0 {
			continue
		}
		for o := domain.Orientation(0); o < 8; o++ {
			m := geometry.Footprint(s, o)
			for k, r := range m {
				if r == domain.NoRing {
					continue
				}
				home := x - geometry.Offsets[k]
				if home < 0 || home >= domain.BoardCells {
					continue
				}
				out = append(out, domain.Piece{Shape: s, Orientation: o, Anchor: domain.Anchor(home)})
			}
		}
	}
	return out
}

func nextEmpty(b *domain.Board, from int) int {
	for from < domain.BoardCells && b.Cells[from] != domain.Empty {
		from++
	}
	return from
}

const allShapes = 1<<domain.ShapeCount - 1
