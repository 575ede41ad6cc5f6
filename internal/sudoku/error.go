package sudoku

import "fmt"

// AssertionError signals a broken precondition, such as an out-of-range
// cell position. These are programming errors on the caller's side and
// surface as panics rather than returned errors.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

func assertCell(row, col int) {
	if !inBounds(row, col) {
		panic(AssertionError{fmt.Sprintf("cell position out of range: %d:%d", row, col)})
	}
}

func assertDigit(v uint8) {
	if v < 1 || v > 9 {
		panic(AssertionError{fmt.Sprintf("digit out of range: %d", v)})
	}
}
