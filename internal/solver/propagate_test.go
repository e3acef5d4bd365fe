package solver

import (
	"testing"

	"svw.info/sudoku-solve/internal/domain"
)

// singlesOnly blanks the diagonal of the solved sample: every blank is the
// only one in its row and column, so elimination alone restores it.
func singlesOnly() [9][9]uint8 {
	g := sampleSolved
	for i := 0; i < 9; i++ {
		g[i][i] = 0
	}
	return g
}

func TestPropagationAloneSolvesSinglesPuzzle(t *testing.T) {
	in := &domain.Board{Values: singlesOnly()}
	b := newBoard(in)
	if !propagate(&b, b.fixedCells()) {
		t.Fatal("propagation hit a contradiction on a valid puzzle")
	}
	if !b.solved() {
		t.Fatal("propagation alone should solve a singles-only puzzle")
	}
	if got := b.grid(in).Values; got != sampleSolved {
		t.Fatalf("propagation produced the wrong grid:\n%v", got)
	}
}

func TestSearchDoesNotGuessWhenPropagationSuffices(t *testing.T) {
	ctx := testCtx(t)
	in := &domain.Board{Values: singlesOnly()}
	out, st, err := NewEngine().Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if st.Nodes != 0 {
		t.Fatalf("searcher guessed %d times on a propagation-only puzzle", st.Nodes)
	}
	if out.Values != sampleSolved {
		t.Fatal("searcher altered a board propagation had already solved")
	}
}

func TestPropagateIdempotentAtFixedPoint(t *testing.T) {
	in := &domain.Board{Values: sample}
	b := newBoard(in)
	if !propagate(&b, b.fixedCells()) {
		t.Fatal("unexpected contradiction")
	}
	snap := b
	if !propagate(&b, b.fixedCells()) {
		t.Fatal("re-propagation reported a contradiction")
	}
	if b != snap {
		t.Fatal("propagation changed a board already at its fixed point")
	}
}

func TestPropagateMonotonic(t *testing.T) {
	in := &domain.Board{Values: sample}
	before := newBoard(in)
	after := before
	if !propagate(&after, after.fixedCells()) {
		t.Fatal("unexpected contradiction")
	}
	for i := range after.cells {
		if extra := after.cells[i].cands &^ before.cells[i].cands; extra != 0 {
			t.Fatalf("cell %d gained candidates %09b during propagation", i, extra)
		}
	}
}

func TestPropagateDetectsDuplicateGivens(t *testing.T) {
	in := &domain.Board{Values: conflicting}
	b := newBoard(in)
	if propagate(&b, b.fixedCells()) {
		t.Fatal("two 5s in one row must be a contradiction")
	}
}

func TestPropagateHiddenSingle(t *testing.T) {
	// A 4 in every column 0..7 (distinct rows and boxes, none in row 0 or
	// box 2) leaves column 8 as the only home for 4 in row 0. No cell ever
	// drops to one candidate, so only the hidden-single rule can fix it.
	var g [9][9]uint8
	g[1][0] = 4
	g[3][1] = 4
	g[6][2] = 4
	g[2][3] = 4
	g[4][4] = 4
	g[7][5] = 4
	g[5][6] = 4
	g[8][7] = 4
	in := &domain.Board{Values: g}
	b := newBoard(in)
	if !propagate(&b, b.fixedCells()) {
		t.Fatal("unexpected contradiction")
	}
	for c := 0; c < 8; c++ {
		if b.cells[c].cands.has(4) {
			t.Fatalf("row 0 col %d should have lost candidate 4", c)
		}
	}
	d, ok := b.cells[8].digit()
	if !ok || d != 4 {
		t.Fatalf("hidden single: row 0 col 8 should be fixed to 4, got fixed=%v d=%d", ok, d)
	}
}
