package validator

import "svw.info/steps/internal/domain"

// outcome is the result of laying one ring on one cell.
type outcome struct {
	next domain.CellState
	err  error
}

// transitions[cell][ring] is the new cell state when a ring of the given
// height is laid on a cell, or the reason it cannot be.
var transitions = [4][3]outcome{
	domain.Empty: {
		domain.Bottom: {next: domain.BottomRing},
		domain.Upper:  {next: domain.UpperRing},
	},
	domain.BottomRing: {
		domain.Bottom: {next: domain.BottomRing, err: ErrCollision},
		domain.Upper:  {next: domain.UpperRing},
	},
	domain.UpperRing: {
		domain.Bottom: {next: domain.UpperRing, err: ErrCollision},
		domain.Upper:  {next: domain.UpperRing, err: ErrStacked},
	},
	domain.Obstructed: {
		domain.Bottom: {next: domain.Obstructed, err: ErrCollision},
		domain.Upper:  {next: domain.UpperRing},
	},
}

// lay applies the transition table to one cell.
func lay(b *domain.Board, i int, r domain.Ring) error {
	o := transitions[b.Cells[i]][r]
	if o.err != nil {
		return o.err
	}
	b.Cells[i] = o.next
	return nil
}

// obstruct marks an empty cell as covered by a neighbouring upper ring.
// Any other state is left alone.
func obstruct(b *domain.Board, i int) {
	if b.Cells[i] == domain.Empty {
		b.Cells[i] = domain.Obstructed
	}
}
