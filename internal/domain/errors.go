package domain

import "errors"

var (
	ErrMalformed      = errors.New("malformed placement")
	ErrDuplicateShape = errors.New("shape placed more than once")
)
