package handlers

import (
	"math/rand/v2"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func TestParseCreateNewGameDTO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    sudoku.Difficulty
		wantErr bool
	}{
		{"easy", "difficulty=easy", sudoku.Easy, false},
		{"medium", "difficulty=medium", sudoku.Medium, false},
		{"hard", "difficulty=hard", sudoku.Hard, false},
		{"unknown plays easy", "difficulty=nightmare", sudoku.Easy, false},
		{"extra keys ignored", "difficulty=hard&theme=dark", sudoku.Hard, false},
		{"missing difficulty plays easy", "", sudoku.Easy, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query, err := url.ParseQuery(test.query)
			require.NoError(t, err)

			dto, err := ParseCreateNewGameDTO(query)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, dto.difficulty())
		})
	}
}

func TestParseMoveDTO(t *testing.T) {
	t.Parallel()

	query, err := url.ParseQuery("row=3&col=7&value=9")
	require.NoError(t, err)

	dto, err := ParseMoveDTO(query)
	require.NoError(t, err)
	assert.Equal(t, MoveDTO{Row: 3, Col: 7, Value: 9}, dto)

	_, err = ParseMoveDTO(url.Values{"row": {"3"}})
	assert.Error(t, err, "col is required")
}

func TestParseGameMove(t *testing.T) {
	t.Parallel()

	move, err := ParseGameMove("enter")
	require.NoError(t, err)
	assert.Equal(t, Enter, move)

	move, err = ParseGameMove("erase")
	require.NoError(t, err)
	assert.Equal(t, Erase, move)

	_, err = ParseGameMove("chord")
	assert.Error(t, err)
}

func TestNewGameSessionDTOHidesSolution(t *testing.T) {
	t.Parallel()

	state := game.New(sudoku.Easy, rand.New(rand.NewPCG(1, 2)))
	dto := NewGameSessionDTO(1, time.Now(), nil, state)

	assert.Equal(t, state.Entries, dto.Grid)
	assert.NotEqual(t, state.Solution, dto.Grid, "live session must not expose the solution")

	for row := range sudoku.Size {
		for col := range sudoku.Size {
			assert.Equal(t, state.Clue(row, col), dto.Clues[row][col])
		}
	}
}
