// Package validator replays placements on a scratch board and decides
// whether they are legal.
package validator

import (
	"fmt"

	"svw.info/steps/internal/domain"
	"svw.info/steps/internal/geometry"
)

// Place lays a single piece onto b.
func Place(b *domain.Board, p domain.Piece) error {
	m := geometry.Of(p)
	home := int(p.Anchor)
	if OffBoard(home, m) {
		return ErrOffBoard
	}
	return apply(b, home, m)
}

// Replay lays pieces onto b in order. On failure it returns the index of the
// rejected piece; b is then partially written and must be discarded.
func Replay(b *domain.Board, pieces domain.Placement) (int, error) {
	for i, p := range pieces {
		if err := Place(b, p); err != nil {
			return i, fmt.Errorf("piece %d (%s): %w", i, p, err)
		}
	}
	return -1, nil
}

// Validate replays a placement string on a fresh board and reports the
// final board or why it was rejected.
func Validate(placement string) (domain.Board, error) {
	var b domain.Board
	pieces, err := domain.ParsePlacement(placement)
	if err != nil {
		return b, err
	}
	_, err = Replay(&b, pieces)
	return b, err
}

// IsPlacementSequenceValid reports whether placement is well-formed and every
// piece can be played, in order, from an empty board.
func IsPlacementSequenceValid(placement string) bool {
	_, err := Validate(placement)
	return err == nil
}

// Removable reports whether the piece of the given shape could be picked up
// from current without disturbing the others: it is not on the board, or
// replaying it last still gives a legal sequence.
func Removable(current domain.Placement, s domain.Shape) bool {
	p, ok := current.Find(s)
	if !ok {
		return true
	}
	reordered := append(current.Without(s), p)
	var b domain.Board
	_, err := Replay(&b, reordered)
	return err == nil
}
