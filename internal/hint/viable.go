// Package hint finds the pieces that can legally be played next.
package hint

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/validator"
)

// ErrObjectiveMismatch means the placement contains a piece the objective
// does not: the objective cannot be reached from it.
var ErrObjectiveMismatch = errors.New("placement is not part of the objective")

// ViablePlacements returns the pieces of objective that can be played right
// after prefix such that every remaining objective piece can still follow in
// some order. The result is sorted and never nil on success; it is empty when
// no legal next move exists.
func ViablePlacements(prefix, objective string) ([]domain.Piece, error) {
	placed, err := domain.ParseTokens(prefix)
	if err != nil {
		return nil, fmt.Errorf("prefix: %w", err)
	}
	goal, err := domain.ParseTokens(objective)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	rest, err := Remaining(placed, goal)
	if err != nil {
		return nil, err
	}
	if !distinct(goal) {
		// every ordering would repeat a shape
		return []domain.Piece{}, nil
	}
	return Viable(placed, rest), nil
}

// Remaining returns the objective pieces not yet in placed, in objective order.
func Remaining(placed, goal domain.Placement) (domain.Placement, error) {
	for _, p := range placed {
		if !goal.Contains(p) {
			return nil, fmt.Errorf("%w: %s", ErrObjectiveMismatch, p)
		}
	}
	rest := make(domain.Placement, 0, len(goal))
	for _, p := range goal {
		if !placed.Contains(p) && !rest.Contains(p) {
			rest = append(rest, p)
		}
	}
	return rest, nil
}

// Viable tries every ordering of rest after placed and collects the first
// piece of each ordering that replays cleanly to the end. The placed board is
// built once and copied for each ordering. A shape repeated across placed and
// rest makes every ordering malformed, so nothing is viable.
func Viable(placed, rest domain.Placement) []domain.Piece {
	out := []domain.Piece{}
	if len(rest) == 0 {
		return out
	}
	all := append(append(domain.Placement(nil), placed...), rest...)
	if !distinct(all) {
		return out
	}
	var base domain.Board
	if _, err := validator.Replay(&base, placed); err != nil {
		return out
	}
	var found uint8
	work := append([]domain.Piece(nil), rest...)
	permute(work, 0, func(order []domain.Piece) {
		first := order[0]
		if found&(1<<first.Shape) != 0 {
			return
		}
		b := base
		if _, err := validator.Replay(&b, order); err == nil {
			found |= 1 << first.Shape
			out = append(out, first)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func distinct(p domain.Placement) bool {
	return bits.OnesCount8(p.Shapes()) == len(p)
}

// NotPlaced returns the shapes missing from p, in letter order.
func NotPlaced(p domain.Placement) []domain.Shape {
	have := p.Shapes()
	var out []domain.Shape
	for s := domain.Shape(0); s < domain.ShapeCount; s++ {
		if have&(1<<s) == 0 {
			out = append(out, s)
		}
	}
	return out
}
