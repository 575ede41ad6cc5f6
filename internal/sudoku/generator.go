package sudoku

import (
	"fmt"
	"math/rand/v2"
)

// Difficulty names a generation tier. It maps to the number of cells
// cleared out of a freshly solved grid.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// TargetRemovals is the number of cells DerivePuzzle tries to blank for
// this tier. Unrecognized values fall back to the easy tier.
func (d Difficulty) TargetRemovals() int {
	switch d {
	case Medium:
		return 45
	case Hard:
		return 55
	default:
		return 30
	}
}

// Puzzle pairs a playable grid with the solution it was carved from.
// Every filled cell of Clues matches Solution, and Clues admits exactly
// one completion. The engine holds no reference to either grid after
// returning; the session layer owns them.
type Puzzle struct {
	Solution Grid
	Clues    Grid
}

// GenerateSolved produces a complete valid grid by running the fill-first
// solver on an empty grid with randomized candidate order. Starting from
// an empty 9x9 grid this cannot fail.
func GenerateSolved(r *rand.Rand) Grid {
	var g Grid
	if !Solve(&g, r) {
		panic(AssertionError{"empty grid did not solve"})
	}
	return g
}

// DerivePuzzle clears up to targetRemovals cells from a copy of solved
// while keeping the solution unique. Positions are visited in one random
// pass; a cleared cell stays cleared only if the grid still counts
// exactly one solution, otherwise it is restored. Each position is tried
// at most once, so the result may have fewer blanks than requested.
//
// panics [AssertionError] when targetRemovals is outside [0,81]
func DerivePuzzle(solved Grid, targetRemovals int, r *rand.Rand) Grid {
	if targetRemovals < 0 || targetRemovals > CellCount {
		panic(AssertionError{fmt.Sprintf("removal target out of range: %d", targetRemovals)})
	}

	puzzle := solved
	removed := 0
	for _, i := range r.Perm(CellCount) {
		if removed >= targetRemovals {
			break
		}
		row, col := cellAt(i)
		prior := puzzle[row][col]
		if prior == Empty {
			continue
		}
		puzzle[row][col] = Empty
		if CountSolutions(&puzzle) == 1 {
			removed++
		} else {
			puzzle[row][col] = prior
		}
	}
	return puzzle
}

// NewPuzzle generates a solved grid and carves a puzzle out of it at the
// removal target of the given difficulty.
func NewPuzzle(d Difficulty, r *rand.Rand) Puzzle {
	solution := GenerateSolved(r)
	return Puzzle{
		Solution: solution,
		Clues:    DerivePuzzle(solution, d.TargetRemovals(), r),
	}
}
