package sudoku

import "math/rand/v2"

/*
 * Both the fill-first solver and the solution counter are the same
 * depth-first traversal: find the first empty cell in row-major order,
 * try each candidate digit that passes IsValid, recurse, erase on
 * backtrack. Keeping them in one routine guarantees the two modes share
 * identical cell and candidate ordering.
 */

type searchMode int

const (
	fillFirst searchMode = iota
	countUpTo2
)

// findEmpty returns the first blank cell in row-major scan order.
func findEmpty(g *Grid) (int, int, bool) {
	for row := range Size {
		for col := range Size {
			if g[row][col] == Empty {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// candidates returns the digits 1-9, freshly permuted when r is non-nil.
// A new permutation is drawn on every call, i.e. per cell visit.
func candidates(r *rand.Rand) [Size]uint8 {
	var ds [Size]uint8
	for i := range ds {
		ds[i] = uint8(i + 1)
	}
	if r != nil {
		r.Shuffle(Size, func(i, j int) { ds[i], ds[j] = ds[j], ds[i] })
	}
	return ds
}

// search returns true when the traversal is finished: in fillFirst mode
// that means a full solution is written into g, in countUpTo2 mode that
// the second solution has been found and further work is pointless.
func search(g *Grid, mode searchMode, r *rand.Rand, count *int) bool {
	if mode == countUpTo2 && *count >= 2 {
		return true
	}
	row, col, ok := findEmpty(g)
	if !ok {
		if mode == countUpTo2 {
			*count++
			return *count >= 2
		}
		return true
	}
	for _, v := range candidates(r) {
		if !IsValid(g, row, col, v) {
			continue
		}
		g[row][col] = v
		if search(g, mode, r, count) {
			if mode == fillFirst {
				return true // keep the assignment in place
			}
			g[row][col] = Empty
			return true
		}
		g[row][col] = Empty
	}
	return false
}

// Solve fills every blank cell of g in place, backtracking as needed.
// Candidate digits are tried in a fresh random permutation per visited
// cell when r is non-nil, in natural 1..9 order otherwise. On success g
// holds one complete valid solution; on failure (the grid was
// unsatisfiable to begin with) g is left exactly as it was.
func Solve(g *Grid, r *rand.Rand) bool {
	return search(g, fillFirst, r, nil)
}

// CountSolutions reports 0, 1 or 2, where 2 stands for "2 or more". The
// search is abandoned as soon as a second solution turns up, and g is
// restored to its pre-call state whatever the outcome.
func CountSolutions(g *Grid) int {
	count := 0
	search(g, countUpTo2, nil, &count)
	return count
}
