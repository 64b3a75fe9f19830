package validator

import (
	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/geometry"
)

// Cut corners of the physical board that can never hold an anchor.
const (
	cornerTopRight   = 9
	cornerBottomLeft = 40
)

// OffBoard reports whether a piece anchored at home would have a ring
// outside the board. The first side the mask leaves empty decides which
// board edges the anchor may touch.
func OffBoard(home int, m geometry.Mask) bool {
	if home < 1 || home > domain.BoardCells-2 || home == cornerTopRight || home == cornerBottomLeft {
		return true
	}
	row, col := home/domain.BoardCols, home%domain.BoardCols
	lastRow, lastCol := domain.BoardRows-1, domain.BoardCols-1
	switch {
	case !m.Extends(geometry.Top):
		return !(row < lastRow && col != 0 && col != lastCol)
	case !m.Extends(geometry.Bottom):
		return !(row > 0 && col != 0 && col != lastCol)
	case !m.Extends(geometry.Right):
		return !(row > 0 && row < lastRow && col != 0)
	case !m.Extends(geometry.Left):
		return !(row > 0 && row < lastRow && col != lastCol)
	default:
		return !(row > 0 && row < lastRow && col != 0 && col != lastCol)
	}
}
