package handlers

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func TestIterBySep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
	}
	for _, test := range tests {
		for i, p := range iterBySep(test.input, test.sep) {
			require.Less(t, i, len(test.array))
			assert.Equal(t, test.array[i], p)
		}
	}
}

func TestExecuteCommand(t *testing.T) {
	t.Parallel()

	state := game.New(sudoku.Easy, rand.New(rand.NewPCG(1, 2)))

	var row, col int
	var want uint8
found:
	for row = range sudoku.Size {
		for col = range sudoku.Size {
			if state.Entries[row][col] == sudoku.Empty {
				want = state.Solution[row][col]
				break found
			}
		}
	}

	require.NoError(t, executeCommand(state, "g"))

	require.NoError(t, executeCommand(state, fmt.Sprintf("e %d %d %d", row, col, want)))
	assert.Equal(t, want, state.Entries[row][col])

	require.NoError(t, executeCommand(state, fmt.Sprintf("x %d %d", row, col)))
	assert.Equal(t, sudoku.Empty, state.Entries[row][col])

	assert.Error(t, executeCommand(state, "o 1 2"), "unknown command")
	assert.Error(t, executeCommand(state, "e 1 2"), "wrong arity")
	assert.Error(t, executeCommand(state, "e a b c"), "non-numeric args")
	assert.Error(t, executeCommand(state, fmt.Sprintf("e %d %d 0", row, col)), "digit out of range")

	require.NoError(t, executeCommand(state, "r"))
	assert.True(t, state.Forfeited)
}
