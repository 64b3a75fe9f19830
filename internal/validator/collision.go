package validator

import (
	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/geometry"
)

// orthogonal neighbours of a cell as (row, col) deltas.
var orthogonal = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// apply lays the rings of mask m anchored at home onto b, walking the nine
// positions in row-major order. It stops at the first ring that cannot be
// laid; cells changed before that point are left as they are.
func apply(b *domain.Board, home int, m geometry.Mask) error {
	hr, hc := home/domain.BoardCols, home%domain.BoardCols
	for k, ring := range m {
		if ring == domain.NoRing {
			continue
		}
		cell := home + geometry.Offsets[k]
		if err := lay(b, cell, ring); err != nil {
			return err
		}
		if ring != domain.Upper {
			continue
		}
		dr, dc := k/3-1, k%3-1
		for _, n := range orthogonal {
			r, c := hr+dr+n[0], hc+dc+n[1]
			if r < 0 || r >= domain.BoardRows || c < 0 || c >= domain.BoardCols {
				continue
			}
			if m.Covers(dr+n[0], dc+n[1]) {
				continue
			}
			obstruct(b, r*domain.BoardCols+c)
		}
	}
	return nil
}
