package domain

import "strings"

// Difficulty selects a band of the starting-position corpus.
type Difficulty int

const (
	Starter Difficulty = iota
	Junior
	Expert
	Master
	Wizard
)

// DifficultyCount is the number of tiers the starting corpus is split into.
const DifficultyCount = 5

func (d Difficulty) String() string {
	switch d {
	case Starter:
		return "starter"
	case Junior:
		return "junior"
	case Expert:
		return "expert"
	case Master:
		return "master"
	case Wizard:
		return "wizard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts a tier name or its index ("0".."4").
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "starter", "0", "":
		return Starter, true
	case "junior", "1":
		return Junior, true
	case "expert", "2":
		return Expert, true
	case "master", "3":
		return Master, true
	case "wizard", "4":
		return Wizard, true
	}
	return Starter, false
}

// CellState is the occupancy of one board location.
type CellState uint8

const (
	Empty      CellState = iota
	BottomRing           // a bottom ring sits on the peg
	UpperRing            // an upper ring sits at this location
	Obstructed           // covered by a neighbouring upper ring
)

func (c CellState) String() string {
	switch c {
	case Empty:
		return "empty"
	case BottomRing:
		return "bottom"
	case UpperRing:
		return "upper"
	case Obstructed:
		return "obstructed"
	default:
		return "invalid"
	}
}

// Rune is the one-character form used by Board.String.
func (c CellState) Rune() rune {
	switch c {
	case BottomRing:
		return 'b'
	case UpperRing:
		return 'U'
	case Obstructed:
		return 'x'
	default:
		return '.'
	}
}

// Ring is one entry of a piece footprint.
type Ring uint8

const (
	NoRing Ring = iota
	Bottom
	Upper
)
