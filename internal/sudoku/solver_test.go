package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveFillsEmptyGrid(t *testing.T) {
	t.Parallel()

	var g Grid
	require.True(t, Solve(&g, rand.New(rand.NewPCG(1, 2))))
	assert.True(t, IsSolved(&g))
}

func TestSolveDeterministicWithoutRand(t *testing.T) {
	t.Parallel()

	var a, b Grid
	require.True(t, Solve(&a, nil))
	require.True(t, Solve(&b, nil))
	assert.Equal(t, a, b)
	assert.True(t, IsSolved(&a))
}

func TestSolveRestoresUnsatisfiableGrid(t *testing.T) {
	t.Parallel()

	// Moving the 5 of row 0 over its 3 leaves rows 0 and 8 both needing
	// a 3 in column 0, so no completion exists.
	g := solvedGrid
	g[0][0], g[8][0] = Empty, Empty
	g[0][1] = 5

	before := g
	assert.False(t, Solve(&g, nil))
	assert.Equal(t, before, g, "failed solve must undo every trial write")
}

func TestCountSolutionsLeavesGridUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		grid Grid
	}{
		{"solved", solvedGrid},
		{"empty", Grid{}},
		{"one missing cell", func() Grid {
			g := solvedGrid
			g[4][4] = Empty
			return g
		}()},
		{"unsatisfiable", func() Grid {
			g := solvedGrid
			g[0][0], g[8][0] = Empty, Empty
			g[0][1] = 5
			return g
		}()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			g := test.grid
			CountSolutions(&g)
			assert.Equal(t, test.grid, g)
		})
	}
}

func TestCountSolutionsSingle(t *testing.T) {
	t.Parallel()

	// One empty cell whose value is forced by its row, column and box.
	g := solvedGrid
	g[2][6] = Empty
	assert.Equal(t, 1, CountSolutions(&g))

	assert.Equal(t, 1, CountSolutions(&solvedGrid))
}

func TestCountSolutionsAmbiguous(t *testing.T) {
	t.Parallel()

	// Rows 6 and 7 hold the digits 4 and 5 crosswise in columns 3 and 8,
	// with both column pairs falling inside a single box. Clearing all
	// four corners makes the pair interchangeable: two completions remain.
	g := solvedGrid
	require.Equal(t, uint8(5), g[6][3])
	require.Equal(t, uint8(4), g[6][8])
	require.Equal(t, uint8(4), g[7][3])
	require.Equal(t, uint8(5), g[7][8])

	g[6][3], g[6][8] = Empty, Empty
	g[7][3], g[7][8] = Empty, Empty
	assert.Equal(t, 2, CountSolutions(&g))
}

func TestCountSolutionsUnsatisfiable(t *testing.T) {
	t.Parallel()

	g := solvedGrid
	g[0][0] = Empty
	g[0][1] = solvedGrid[0][0] // duplicate digit locks the blank out
	assert.Equal(t, 0, CountSolutions(&g))
}
