package sudoku

import (
	"fmt"
	"strings"
)

const (
	// Size is the side length of the playing field.
	Size = 9
	// BoxSize is the side length of one of the nine boxes tiling the field.
	BoxSize = 3
	// CellCount is the total number of cells.
	CellCount = Size * Size
	// Empty marks a cell with no digit in it.
	Empty uint8 = 0
)

// Grid is a 9x9 sudoku field. Cells hold 0 for empty or a digit 1-9.
// Grids are plain values; copying one is a full snapshot.
type Grid [Size][Size]uint8

func (g Grid) String() string {
	var b strings.Builder
	for row := range Size {
		for col := range Size {
			if v := g[row][col]; v == Empty {
				fmt.Fprint(&b, ". ")
			} else {
				fmt.Fprintf(&b, "%d ", v)
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// FilledCount reports how many cells hold a digit.
func (g Grid) FilledCount() (count int) {
	for row := range Size {
		for col := range Size {
			if g[row][col] != Empty {
				count++
			}
		}
	}
	return
}

// EmptyCount reports how many cells are blank.
func (g Grid) EmptyCount() int {
	return CellCount - g.FilledCount()
}

// cellAt converts a linear index in [0,80] to (row, col).
func cellAt(i int) (row, col int) {
	return i / Size, i % Size
}

// boxOrigin locates the top-left cell of the box containing (row, col).
func boxOrigin(row, col int) (int, int) {
	return row - row%BoxSize, col - col%BoxSize
}

func inBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}
