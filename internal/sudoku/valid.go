package sudoku

// IsValid reports whether writing v at (row, col) would leave the grid
// locally legal: v must not already occur in the same row, the same
// column, or the same 3x3 box. The target cell's current value does not
// have to be Empty; the check treats every cell, including the target,
// as "other cells as-is".
//
// panics [AssertionError] on out-of-range inputs
func IsValid(g *Grid, row, col int, v uint8) bool {
	assertCell(row, col)
	assertDigit(v)

	for i := range Size {
		if g[row][i] == v || g[i][col] == v {
			return false
		}
	}
	br, bc := boxOrigin(row, col)
	for dr := range BoxSize {
		for dc := range BoxSize {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether the grid is completely filled with every row,
// column, and box holding each digit 1-9 exactly once.
func IsSolved(g *Grid) bool {
	for row := range Size {
		var rowSeen, colSeen uint16
		for i := range Size {
			rv, cv := g[row][i], g[i][row]
			if rv == Empty || cv == Empty {
				return false
			}
			if rowSeen&(1<<rv) != 0 || colSeen&(1<<cv) != 0 {
				return false
			}
			rowSeen |= 1 << rv
			colSeen |= 1 << cv
		}
	}
	for br := 0; br < Size; br += BoxSize {
		for bc := 0; bc < Size; bc += BoxSize {
			var seen uint16
			for dr := range BoxSize {
				for dc := range BoxSize {
					v := g[br+dr][bc+dc]
					if v == Empty || seen&(1<<v) != 0 {
						return false
					}
					seen |= 1 << v
				}
			}
		}
	}
	return true
}
