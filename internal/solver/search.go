package solver

import "context"

// search runs propagation and resolves whatever ambiguity remains by
// depth-first guessing. The board travels by value, so every branch owns an
// independent snapshot; a failed branch is simply dropped and unwinding the
// call stack is the backtrack. Candidates are tried in ascending digit
// order on the cell with the fewest of them, so the first solution found is
// deterministic.
func search(ctx context.Context, b board, seed []int, nodes *int) (board, bool) {
	if ctx.Err() != nil {
		return board{}, false
	}
	if !propagate(&b, seed) {
		return board{}, false
	}
	if b.solved() {
		return b, true
	}
	i, ok := b.fewestCandidates()
	if !ok {
		// every cell fixed yet not solved: cannot happen while the
		// propagation invariant holds
		return board{}, false
	}
	for _, d := range b.cells[i].cands.digits() {
		*nodes++
		next := b
		next.fix(i, d)
		if out, ok := search(ctx, next, []int{i}, nodes); ok {
			return out, true
		}
	}
	return board{}, false
}

// countSolutions explores like search but keeps going past the first
// solution, stopping once limit solutions have been seen.
func countSolutions(ctx context.Context, b board, seed []int, nodes *int, limit int) int {
	if ctx.Err() != nil || !propagate(&b, seed) {
		return 0
	}
	if b.solved() {
		return 1
	}
	i, ok := b.fewestCandidates()
	if !ok {
		return 0
	}
	found := 0
	for _, d := range b.cells[i].cands.digits() {
		*nodes++
		next := b
		next.fix(i, d)
		found += countSolutions(ctx, next, []int{i}, nodes, limit-found)
		if found >= limit {
			break
		}
	}
	return found
}
