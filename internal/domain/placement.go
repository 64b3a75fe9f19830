package domain

import (
	"fmt"
	"strings"
)

// Placement is an ordered sequence of pieces. Order matters: each piece is
// checked against the board left by the ones before it.
type Placement []Piece

func (p Placement) String() string {
	var b strings.Builder
	b.Grow(3 * len(p))
	for _, pc := range p {
		b.WriteString(pc.String())
	}
	return b.String()
}

// Complete reports whether every shape has been placed.
func (p Placement) Complete() bool { return len(p) == ShapeCount }

// Contains reports whether the exact token is part of the placement.
func (p Placement) Contains(pc Piece) bool {
	for _, q := range p {
		if q == pc {
			return true
		}
	}
	return false
}

// Find returns the piece of the given shape, if placed.
func (p Placement) Find(s Shape) (Piece, bool) {
	for _, q := range p {
		if q.Shape == s {
			return q, true
		}
	}
	return Piece{}, false
}

// Without returns a copy with the given shape removed.
func (p Placement) Without(s Shape) Placement {
	out := make(Placement, 0, len(p))
	for _, q := range p {
		if q.Shape != s {
			out = append(out, q)
		}
	}
	return out
}

// Shapes returns the set of shapes as a bitmask, bit i for shape i.
func (p Placement) Shapes() uint8 {
	var m uint8
	for _, q := range p {
		m |= 1 << q.Shape
	}
	return m
}

// ParseTokens splits s into three-character tokens and decodes each one.
// The empty string is the empty placement; repeated shapes are not checked.
func ParseTokens(s string) (Placement, error) {
	if len(s)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 3", ErrMalformed, len(s))
	}
	out := make(Placement, 0, len(s)/3)
	for i := 0; i < len(s); i += 3 {
		pc, err := ParsePiece(s[i : i+3])
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i/3, err)
		}
		out = append(out, pc)
	}
	return out, nil
}

// ParsePlacement decodes a well-formed placement string.
func ParsePlacement(s string) (Placement, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty placement", ErrMalformed)
	}
	out, err := ParseTokens(s)
	if err != nil {
		return nil, err
	}
	var seen uint8
	for i, pc := range out {
		bit := uint8(1) << pc.Shape
		if seen&bit != 0 {
			return nil, fmt.Errorf("piece %d: %w: %s", i, ErrDuplicateShape, pc.Shape)
		}
		seen |= bit
	}
	return out, nil
}

// IsPlacementWellFormed reports whether s is a non-empty run of well-formed
// tokens with no shape repeated.
func IsPlacementWellFormed(s string) bool {
	_, err := ParsePlacement(s)
	return err == nil
}

// MarshalText encodes the placement as its concatenated tokens.
func (p Placement) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Placement) UnmarshalText(b []byte) error {
	v, err := ParseTokens(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
