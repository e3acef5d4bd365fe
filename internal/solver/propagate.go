package solver

// units lists the 27 constraint groups (9 rows, 9 columns, 9 boxes) by
// cell index.
var units = buildUnits()

func buildUnits() [27][9]int {
	var out [27][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			out[r][c] = r*9 + c
			out[9+c][r] = r*9 + c
		}
	}
	for b := 0; b < 9; b++ {
		br, bc := (b/3)*3, (b%3)*3
		for k := 0; k < 9; k++ {
			out[18+b][k] = (br+k/3)*9 + bc + k%3
		}
	}
	return out
}

// fixedCells returns the positions currently fixed, the seed for the first
// propagation pass over a fresh board.
func (b *board) fixedCells() []int {
	out := make([]int, 0, 81)
	for i := range b.cells {
		if b.cells[i].fixed {
			out = append(out, i)
		}
	}
	return out
}

// propagate drives the board to a fixed point and reports false on
// contradiction. The worklist holds fixed cells whose digit still has to be
// eliminated from their peers; collapsing a peer to a single candidate
// fixes it and queues it in turn. Once the worklist drains, a hidden-single
// sweep over every row, column, and box fixes any digit with exactly one
// remaining home and re-seeds the worklist. Propagation only ever shrinks
// candidate sets, so the loop terminates.
func propagate(b *board, seed []int) bool {
	queue := append([]int(nil), seed...)
	for {
		for len(queue) > 0 {
			i := queue[0]
			queue = queue[1:]
			d, ok := b.cells[i].digit()
			if !ok {
				continue
			}
			for _, p := range peers[i] {
				pc := &b.cells[p]
				if pc.fixed {
					if pd, _ := pc.digit(); pd == d {
						return false // two peers hold the same digit
					}
					continue
				}
				if !b.eliminate(p, d) {
					continue
				}
				switch pc.cands.count() {
				case 0:
					return false
				case 1:
					nd, _ := pc.cands.sole()
					b.fix(p, nd)
					queue = append(queue, p)
				}
			}
		}
		if !hiddenSingles(b, &queue) {
			return false
		}
		if len(queue) == 0 {
			return true
		}
	}
}

// hiddenSingles fixes every digit that has exactly one possible cell left
// in some unit, queueing each fix. A digit with no possible cell in a unit
// is a contradiction (false).
func hiddenSingles(b *board, queue *[]int) bool {
	for u := range units {
		for d := uint8(1); d <= 9; d++ {
			home, n := -1, 0
			placed := false
			for _, i := range units[u] {
				c := b.cells[i]
				if fd, ok := c.digit(); ok {
					if fd == d {
						placed = true
						break
					}
					continue
				}
				if c.cands.has(d) {
					home = i
					n++
				}
			}
			if placed {
				continue
			}
			if n == 0 {
				return false
			}
			if n == 1 {
				b.fix(home, d)
				*queue = append(*queue, home)
			}
		}
	}
	return true
}
