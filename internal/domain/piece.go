package domain

import "fmt"

// Shape identifies one of the eight pieces, 0 for 'A' through 7 for 'H'.
type Shape uint8

// ShapeCount is the number of distinct pieces in a full game.
const ShapeCount = 8

func (s Shape) String() string { return string(rune('A' + s)) }

// Orientation is 0..3 for the primary footprint turned clockwise by 90° steps
// and 4..7 for the same turns of the mirrored footprint.
type Orientation uint8

func (o Orientation) String() string { return string(rune('A' + o)) }

// Mirrored reports whether the orientation uses the flipped footprint.
func (o Orientation) Mirrored() bool { return o >= 4 }

// Turns is the number of clockwise quarter turns.
func (o Orientation) Turns() int { return int(o) % 4 }

// Rotate turns the piece a quarter clockwise or anticlockwise, keeping its
// mirror group.
func (o Orientation) Rotate(clockwise bool) Orientation {
	base := o - Orientation(o.Turns())
	step := 3
	if clockwise {
		step = 1
	}
	return base + Orientation((o.Turns()+step)%4)
}

// Flip switches to the other mirror group with the same number of turns.
func (o Orientation) Flip() Orientation {
	if o.Mirrored() {
		return o - 4
	}
	return o + 4
}

// Anchor is a board index 0..49.
type Anchor uint8

const (
	BoardCols  = 10
	BoardRows  = 5
	BoardCells = BoardCols * BoardRows
	pegCells   = 25
)

func (a Anchor) Row() int { return int(a) / BoardCols }
func (a Anchor) Col() int { return int(a) % BoardCols }

// String returns the token letter: A..Y for peg anchors, a..y for the rest.
func (a Anchor) String() string {
	if a < pegCells {
		return string(rune('A' + a))
	}
	return string(rune('a' + a - pegCells))
}

// Piece is one decoded placement token.
type Piece struct {
	Shape       Shape
	Orientation Orientation
	Anchor      Anchor
}

func (p Piece) String() string {
	return p.Shape.String() + p.Orientation.String() + p.Anchor.String()
}

// MarshalText lets pieces travel as their three-letter token.
func (p Piece) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Piece) UnmarshalText(b []byte) error {
	v, err := ParsePiece(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// IsPiecePlacementWellFormed reports whether token has exactly three
// characters: a shape and an orientation in A..H and an anchor in A..Y or a..y.
func IsPiecePlacementWellFormed(token string) bool {
	if len(token) != 3 {
		return false
	}
	if !inRange(token[0], 'A', 'H') || !inRange(token[1], 'A', 'H') {
		return false
	}
	return inRange(token[2], 'A', 'Y') || inRange(token[2], 'a', 'y')
}

func inRange(c, lo, hi byte) bool { return c >= lo && c <= hi }

// ParsePiece decodes a single three-character token.
func ParsePiece(token string) (Piece, error) {
	if !IsPiecePlacementWellFormed(token) {
		return Piece{}, fmt.Errorf("%w: token %q", ErrMalformed, token)
	}
	p := Piece{
		Shape:       Shape(token[0] - 'A'),
		Orientation: Orientation(token[1] - 'A'),
	}
	if c := token[2]; c <= 'Y' {
		p.Anchor = Anchor(c - 'A')
	} else {
		p.Anchor = Anchor(c-'a') + pegCells
	}
	return p, nil
}
