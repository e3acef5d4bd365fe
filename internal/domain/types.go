package domain

import "strings"

// Board holds current values and which cells are fixed givens.
// A zero value means the cell is empty.
type Board struct {
	Values [9][9]uint8
	Fixed  [9][9]bool
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int
	Col int
}

// Puzzle is a generated Sudoku with its provenance.
type Puzzle struct {
	Seed       int64
	Difficulty Difficulty
	Board      Board
	CreatedAt  int64
}

// Empty reports whether the cell at r,c has no value yet.
func (b *Board) Empty(r, c int) bool { return b.Values[r][c] == 0 }

// Givens counts the cells that have a value.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the board with band separators, underscores for blanks.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString("_ ")
			} else {
				sb.WriteByte('0' + v)
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString(strings.Repeat("-", 21))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
