package solver

import "svw.info/sudoku-solve/internal/domain"

// cell is either fixed to a digit or still holds a set of candidates.
// A fixed cell keeps its digit as a singleton candidate set. An unfixed
// cell with an empty set is the contradiction state of a dead branch.
type cell struct {
	fixed bool
	cands digitSet
}

func (c cell) digit() (uint8, bool) {
	if !c.fixed {
		return 0, false
	}
	d, _ := c.cands.sole()
	return d, true
}

// board is the solver's working state: 81 cells in row-major order.
// It is a value type; assignment takes a full snapshot, which is what
// the searcher relies on for copy-on-branch.
type board struct {
	cells [81]cell
}

// peers[i] holds the 20 cells sharing a row, column, or box with i.
var peers = buildPeers()

func buildPeers() [81][20]int {
	var out [81][20]int
	for i := 0; i < 81; i++ {
		r, c := i/9, i%9
		br, bc := (r/3)*3, (c/3)*3
		n := 0
		add := func(j int) {
			if j == i {
				return
			}
			for k := 0; k < n; k++ {
				if out[i][k] == j {
					return
				}
			}
			out[i][n] = j
			n++
		}
		for k := 0; k < 9; k++ {
			add(r*9 + k)
			add(k*9 + c)
		}
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				add((br+dr)*9 + bc + dc)
			}
		}
	}
	return out
}

// newBoard builds the initial state: givens become fixed cells, blanks get
// the full candidate set. No consistency checking happens here; duplicate
// givens surface later as a propagation contradiction.
func newBoard(b *domain.Board) board {
	var out board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			i := r*9 + c
			if v := b.Values[r][c]; v != 0 {
				out.cells[i] = cell{fixed: true, cands: single(v)}
			} else {
				out.cells[i] = cell{cands: allDigits}
			}
		}
	}
	return out
}

// fix pins cell i to digit d. It does not cascade; the propagator owns
// eliminating d from the peers afterwards.
func (b *board) fix(i int, d uint8) {
	b.cells[i] = cell{fixed: true, cands: single(d)}
}

// eliminate removes d from cell i's candidates and reports whether anything
// changed. Fixed cells are left alone. The set may end up empty; callers
// must notice and treat that as a contradiction.
func (b *board) eliminate(i int, d uint8) bool {
	c := &b.cells[i]
	if c.fixed || !c.cands.has(d) {
		return false
	}
	c.cands = c.cands.without(d)
	return true
}

// solved reports completeness only: every cell fixed. Validity is upheld by
// the propagation invariant, not re-checked here.
func (b *board) solved() bool {
	for i := range b.cells {
		if !b.cells[i].fixed {
			return false
		}
	}
	return true
}

// fewestCandidates picks the unfixed cell with the smallest candidate set,
// the most-constrained-first search heuristic. ok is false when every cell
// is fixed.
func (b *board) fewestCandidates() (i int, ok bool) {
	best, bestN := -1, 10
	for j := range b.cells {
		c := b.cells[j]
		if c.fixed {
			continue
		}
		if n := c.cands.count(); n < bestN {
			best, bestN = j, n
			if n <= 1 {
				break
			}
		}
	}
	return best, best >= 0
}

// grid converts back to the interchange form, preserving which cells were
// givens on the input board.
func (b *board) grid(in *domain.Board) *domain.Board {
	out := &domain.Board{Fixed: in.Fixed}
	for i, c := range b.cells {
		if d, ok := c.digit(); ok {
			out.Values[i/9][i%9] = d
		}
	}
	return out
}
