package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// solvedGrid is a known complete solution used as a fixture throughout
// the package tests.
var solvedGrid = Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	g := solvedGrid
	g[0][2] = Empty // row 0 and box 0 are missing a 4

	tests := []struct {
		name     string
		row, col int
		value    uint8
		want     bool
	}{
		{"missing digit fits", 0, 2, 4, true},
		{"duplicate in row", 0, 2, 6, false},
		{"duplicate in column", 0, 2, 2, false},
		{"duplicate in box", 0, 2, 7, false},
		{"occupied cell checked against others", 4, 4, 5, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, IsValid(&g, test.row, test.col, test.value))
		})
	}
}

func TestIsValidChecksEveryUnit(t *testing.T) {
	t.Parallel()

	g := solvedGrid
	row, col := 6, 7
	want := g[row][col]
	g[row][col] = Empty

	for v := uint8(1); v <= 9; v++ {
		inRow, inCol, inBox := false, false, false
		for i := range Size {
			inRow = inRow || g[row][i] == v
			inCol = inCol || g[i][col] == v
		}
		br, bc := boxOrigin(row, col)
		for dr := range BoxSize {
			for dc := range BoxSize {
				inBox = inBox || g[br+dr][bc+dc] == v
			}
		}
		assert.Equal(t, !(inRow || inCol || inBox), IsValid(&g, row, col, v),
			"digit %d", v)
		if v == want {
			assert.True(t, IsValid(&g, row, col, v))
		}
	}
}

func TestIsValidPanicsOutOfRange(t *testing.T) {
	t.Parallel()

	g := solvedGrid
	assert.Panics(t, func() { IsValid(&g, 9, 0, 1) })
	assert.Panics(t, func() { IsValid(&g, 0, -1, 1) })
	assert.Panics(t, func() { IsValid(&g, 0, 0, 0) })
	assert.Panics(t, func() { IsValid(&g, 0, 0, 10) })
}

func TestIsSolved(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSolved(&solvedGrid))

	var empty Grid
	assert.False(t, IsSolved(&empty))

	broken := solvedGrid
	broken[8][8] = Empty
	assert.False(t, IsSolved(&broken))

	broken = solvedGrid
	broken[0][0], broken[0][1] = broken[0][1], broken[0][0]
	assert.False(t, IsSolved(&broken))
}
