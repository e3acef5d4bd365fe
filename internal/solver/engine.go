package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/sudoku-solve/internal/domain"
	"svw.info/sudoku-solve/internal/ports"
)

// ErrUnsolvable is the root-level outcome when every branch is exhausted.
// Contradictions inside the search are ordinary branch failures and never
// surface as errors on their own.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// Engine is the default solver: candidate elimination to a fixed point,
// then depth-first search over the remaining cells.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

func (e *Engine) Solve(ctx context.Context, in *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	b := newBoard(in)
	nodes := 0
	out, ok := search(ctx, b, b.fixedCells(), &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return out.grid(in), st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (e *Engine) Unique(ctx context.Context, in *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	b := newBoard(in)
	nodes := 0
	n := countSolutions(ctx, b, b.fixedCells(), &nodes, 2)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return n == 1, st, nil
}
