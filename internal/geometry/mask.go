package geometry

import (
	"errors"
	"fmt"

	"svw.info/steps/internal/domain"
)

// Mask is a 3×3 footprint in row-major order around the anchor:
// up-left, up, up-right, left, center, right, down-left, down, down-right.
type Mask [9]domain.Ring

// Offsets gives the board index delta of each mask position.
var Offsets = [9]int{-11, -10, -9, -1, 0, 1, 9, 10, 11}

// Edge names a side of the 3×3 neighbourhood.
type Edge int

const (
	Top Edge = iota
	Bottom
	Right
	Left
)

var edgeCells = [4][3]int{
	Top:    {0, 1, 2},
	Bottom: {6, 7, 8},
	Right:  {2, 5, 8},
	Left:   {0, 3, 6},
}

var ErrBadMask = errors.New("bad footprint")

// ParseMask reads a nine-character string over {0,1,2}.
func ParseMask(s string) (Mask, error) {
	var m Mask
	if len(s) != 9 {
		return m, fmt.Errorf("%w: %q has length %d", ErrBadMask, s, len(s))
	}
	for i := 0; i < 9; i++ {
		c := s[i]
		if c < '0' || c > '2' {
			return m, fmt.Errorf("%w: %q at %d", ErrBadMask, c, i)
		}
		m[i] = domain.Ring(c - '0')
	}
	return m, nil
}

func (m Mask) String() string {
	var b [9]byte
	for i, r := range m {
		b[i] = '0' + byte(r)
	}
	return string(b[:])
}

// Extends reports whether any ring lies on the given side of the neighbourhood.
func (m Mask) Extends(e Edge) bool {
	for _, k := range edgeCells[e] {
		if m[k] != domain.NoRing {
			return true
		}
	}
	return false
}

// Covers reports whether relative position (dr, dc), each in -1..1, holds a ring.
// Positions outside the neighbourhood are never covered.
func (m Mask) Covers(dr, dc int) bool {
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 {
		return false
	}
	return m[(dr+1)*3+dc+1] != domain.NoRing
}
