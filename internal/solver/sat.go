package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// SATSolver encodes the puzzle as CNF and hands it to gini. One variable
// per (row, col, digit) triple; every cell carries at least one digit, and
// within each row, column, and box a digit appears at most once, which
// together pin each cell to exactly one digit.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func satLit(r, c int, n uint8) z.Lit {
	return z.Var(int(n-1) + c*9 + r*81 + 1).Pos()
}

func encode(g *gini.Gini, in *domain.Board) {
	// every cell holds a digit
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for n := uint8(1); n <= 9; n++ {
				g.Add(satLit(r, c, n))
			}
			g.Add(0)
		}
	}
	atMostOne := func(cells [9]int) {
		for n := uint8(1); n <= 9; n++ {
			for a := 0; a < 9; a++ {
				for b := a + 1; b < 9; b++ {
					g.Add(satLit(cells[a]/9, cells[a]%9, n).Not())
					g.Add(satLit(cells[b]/9, cells[b]%9, n).Not())
					g.Add(0)
				}
			}
		}
	}
	for u := range units {
		atMostOne(units[u])
	}
	// givens as unit clauses
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := in.Values[r][c]; v != 0 {
				g.Add(satLit(r, c, v))
				g.Add(0)
			}
		}
	}
}

func decode(g *gini.Gini, in *domain.Board) *domain.Board {
	out := &domain.Board{Fixed: in.Fixed}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for n := uint8(1); n <= 9; n++ {
				if g.Value(satLit(r, c, n)) {
					out.Values[r][c] = n
					break
				}
			}
		}
	}
	return out
}

func (s *SATSolver) Solve(ctx context.Context, in *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	g := gini.New()
	encode(g, in)
	sat := g.Solve()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if sat != 1 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}
	return decode(g, in), ports.Stats{Duration: time.Since(start)}, nil
}

// Unique solves once, blocks the found model, and checks for a second one.
func (s *SATSolver) Unique(ctx context.Context, in *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	g := gini.New()
	encode(g, in)
	if g.Solve() != 1 {
		if err := ctx.Err(); err != nil {
			return false, ports.Stats{Duration: time.Since(start)}, err
		}
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	first := decode(g, in)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g.Add(satLit(r, c, first.Values[r][c]).Not())
		}
	}
	g.Add(0)
	unique := g.Solve() != 1
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
