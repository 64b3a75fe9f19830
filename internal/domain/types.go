package domain

import "strings"

// Board is the scratch grid rebuilt by every validation. It is a value type:
// copying it gives an independent board.
type Board struct {
	Cells [BoardCells]CellState `json:"cells"`
}

// At returns the state of cell i.
func (b *Board) At(i int) CellState { return b.Cells[i] }

// Count returns how many cells are in state s.
func (b *Board) Count(s CellState) int {
	n := 0
	for _, c := range b.Cells {
		if c == s {
			n++
		}
	}
	return n
}

// String draws the board as five rows of ten characters.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardCells + BoardRows)
	for r := 0; r < BoardRows; r++ {
		for c := 0; c < BoardCols; c++ {
			sb.WriteRune(b.Cells[r*BoardCols+c].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Hint describes a suggested next move for the UI.
type Hint struct {
	Piece    Piece   `json:"piece"`
	Viable   []Piece `json:"viable,omitempty"`
	Solution string  `json:"solution,omitempty"`
}

// Game is an in-memory session: the starting position it was dealt and the
// pieces played since.
type Game struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed,omitempty"`
	Initial    Placement  `json:"initial"`
	Current    Placement  `json:"current"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// Fixed reports whether the shape was part of the dealt starting position.
func (g *Game) Fixed(s Shape) bool {
	_, ok := g.Initial.Find(s)
	return ok
}

// Solved reports whether all eight pieces are on the board.
func (g *Game) Solved() bool { return g.Current.Complete() }

// Report is the outcome of replaying a placement.
type Report struct {
	OK     bool   `json:"ok"`
	Failed int    `json:"failed"` // index of the rejected piece, -1 when none
	Piece  string `json:"piece,omitempty"`
	Reason string `json:"reason,omitempty"`
	Board  Board  `json:"board"`
}
