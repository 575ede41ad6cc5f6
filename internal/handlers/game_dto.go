package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/schema"

	"github.com/vancomm/sudoku-server/internal/game"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

type CreateNewGameDTO struct {
	Difficulty string `schema:"difficulty"`
}

func ParseCreateNewGameDTO(src map[string][]string) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

// difficulty maps the request value onto a known tier; anything
// unrecognized plays as easy.
func (dto CreateNewGameDTO) difficulty() sudoku.Difficulty {
	switch d := sudoku.Difficulty(dto.Difficulty); d {
	case sudoku.Easy, sudoku.Medium, sudoku.Hard:
		return d
	default:
		return sudoku.Easy
	}
}

type GameMove int

const (
	Enter GameMove = iota
	Erase
)

func ParseGameMove(s string) (GameMove, error) {
	switch s {
	case "enter":
		return Enter, nil
	case "erase":
		return Erase, nil
	default:
		return 0, fmt.Errorf("unknown move %q", s)
	}
}

type MoveDTO struct {
	Row   int   `schema:"row,required"`
	Col   int   `schema:"col,required"`
	Value uint8 `schema:"value"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string                          `json:"game_session_id"`
	Grid          sudoku.Grid                     `json:"grid"`
	Clues         [sudoku.Size][sudoku.Size]bool  `json:"clues"`
	Difficulty    string                          `json:"difficulty"`
	Mistakes      int                             `json:"mistakes"`
	Won           bool                            `json:"won"`
	Forfeited     bool                            `json:"forfeited"`
	StartedAt     int64                           `json:"started_at"`
	EndedAt       *int64                          `json:"ended_at,omitempty"`
}

// NewGameSessionDTO renders a session for the client. The solution grid
// never leaves the server while a game is live; only the player's
// entries and the clue mask go out.
func NewGameSessionDTO(
	gameSessionID int64,
	startedAt time.Time,
	endedAt *time.Time,
	s *game.State,
) *GameSessionDTO {
	var endedAtInt *int64
	if endedAt != nil {
		e := endedAt.UnixMilli()
		endedAtInt = &e
	}
	var clues [sudoku.Size][sudoku.Size]bool
	for row := range sudoku.Size {
		for col := range sudoku.Size {
			clues[row][col] = s.Clue(row, col)
		}
	}
	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(gameSessionID, 10),
		StartedAt:     startedAt.UnixMilli(),
		EndedAt:       endedAtInt,
		Grid:          s.Entries,
		Clues:         clues,
		Difficulty:    string(s.Difficulty),
		Mistakes:      s.Mistakes,
		Won:           s.Won,
		Forfeited:     s.Forfeited,
	}
	return dto
}
