package validator

import "errors"

var (
	ErrOffBoard  = errors.New("piece falls off the board")
	ErrCollision = errors.New("bottom ring lands on an occupied peg")
	ErrStacked   = errors.New("upper ring lands on another upper ring")
)
