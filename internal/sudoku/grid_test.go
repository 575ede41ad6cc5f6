package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridCounts(t *testing.T) {
	t.Parallel()

	var empty Grid
	assert.Equal(t, 0, empty.FilledCount())
	assert.Equal(t, CellCount, empty.EmptyCount())

	assert.Equal(t, CellCount, solvedGrid.FilledCount())
	assert.Equal(t, 0, solvedGrid.EmptyCount())

	g := solvedGrid
	g[0][0] = Empty
	assert.Equal(t, CellCount-1, g.FilledCount())
	assert.Equal(t, 1, g.EmptyCount())
}

func TestGridString(t *testing.T) {
	t.Parallel()

	g := solvedGrid
	g[0][1] = Empty
	s := g.String()

	assert.Contains(t, s, "5 . 4 6 7 8 9 1 2")
	assert.Equal(t, Size, len(splitLines(s)))
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func TestCellAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		index    int
		row, col int
	}{
		{0, 0, 0},
		{8, 0, 8},
		{9, 1, 0},
		{40, 4, 4},
		{80, 8, 8},
	}
	for _, test := range tests {
		row, col := cellAt(test.index)
		assert.Equal(t, test.row, row)
		assert.Equal(t, test.col, col)
	}
}

func TestBoxOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 0, 0},
		{2, 2, 0, 0},
		{3, 2, 3, 0},
		{4, 4, 3, 3},
		{8, 8, 6, 6},
	}
	for _, test := range tests {
		br, bc := boxOrigin(test.row, test.col)
		assert.Equal(t, test.wantRow, br)
		assert.Equal(t, test.wantCol, bc)
	}
}
