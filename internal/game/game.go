package game

import (
	"bytes"
	"encoding/gob"
	"errors"
	"math/rand/v2"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

var (
	ErrCellIsClue   = errors.New("cell holds a pre-filled clue")
	ErrGameOver     = errors.New("game is already over")
	ErrOutOfBounds  = errors.New("cell position out of range")
	ErrInvalidDigit = errors.New("digit out of range")
)

// State is a single play session. The engine itself is stateless; this
// object owns everything that outlives one engine call: the solution,
// the untouched clue snapshot, the player's progress and score.
type State struct {
	Difficulty sudoku.Difficulty
	Solution   sudoku.Grid
	Clues      sudoku.Grid // initial snapshot, never mutated
	Entries    sudoku.Grid // clues plus player-entered digits
	Mistakes   int
	Won        bool
	Forfeited  bool
}

// New generates a fresh puzzle at the given difficulty and wraps it in a
// playable session.
func New(d sudoku.Difficulty, r *rand.Rand) *State {
	p := sudoku.NewPuzzle(d, r)
	return &State{
		Difficulty: d,
		Solution:   p.Solution,
		Clues:      p.Clues,
		Entries:    p.Clues,
	}
}

// DecodeState restores a session from its gob encoding.
func DecodeState(buf []byte) (*State, error) {
	var s State
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Bytes encodes the session with gob for storage.
func (s State) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Over reports whether the session accepts no further moves.
func (s *State) Over() bool {
	return s.Won || s.Forfeited
}

// Clue reports whether (row, col) was pre-filled at generation time.
// Clue cells can never be entered into or erased.
func (s *State) Clue(row, col int) bool {
	return s.Clues[row][col] != sudoku.Empty
}

func (s *State) validateCell(row, col int) error {
	if s.Over() {
		return ErrGameOver
	}
	if row < 0 || row >= sudoku.Size || col < 0 || col >= sudoku.Size {
		return ErrOutOfBounds
	}
	if s.Clue(row, col) {
		return ErrCellIsClue
	}
	return nil
}

// Enter writes the player's digit at (row, col). A digit that does not
// match the solution counts as a mistake and is not kept. Filling the
// last cell correctly wins the game.
func (s *State) Enter(row, col int, v uint8) error {
	if err := s.validateCell(row, col); err != nil {
		return err
	}
	if v < 1 || v > 9 {
		return ErrInvalidDigit
	}
	if s.Solution[row][col] != v {
		s.Mistakes++
		return nil
	}
	s.Entries[row][col] = v
	if s.Entries == s.Solution {
		s.Won = true
	}
	return nil
}

// Erase blanks a player-entered cell. Erasing an already blank cell is a
// no-op.
func (s *State) Erase(row, col int) error {
	if err := s.validateCell(row, col); err != nil {
		return err
	}
	s.Entries[row][col] = sudoku.Empty
	return nil
}

// Forfeit ends the session and reveals the solution.
func (s *State) Forfeit() {
	if s.Over() {
		return
	}
	s.Forfeited = true
	s.Entries = s.Solution
}
