package validator

import (
	"context"

	"svw.info/sudoku-solve/internal/domain"
)

// FastValidator flags duplicate values within any row, column, or box using
// one bitmask pass per group. Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	scan := func(cells [9]domain.CellCoord) {
		m := 0
		for _, cc := range cells {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}
	var cells [9]domain.CellCoord
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cells[c] = domain.CellCoord{Row: r, Col: c}
		}
		scan(cells)
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			cells[r] = domain.CellCoord{Row: r, Col: c}
		}
		scan(cells)
	}
	for b := 0; b < 9; b++ {
		for k := 0; k < 9; k++ {
			cells[k] = domain.CellCoord{Row: (b/3)*3 + k/3, Col: (b%3)*3 + k%3}
		}
		scan(cells)
	}
	return len(conf) == 0, conf, nil
}
