package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type GameSession struct {
	GameSessionID int64
	PlayerID      *int64
	Difficulty    string
	Mistakes      int32
	Won           bool
	Forfeited     bool
	State         []byte
	StartedAt     time.Time
	EndedAt       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateSessionParams struct {
	PlayerID   *int64
	Difficulty string
	State      []byte
}

func (q *Queries) CreateSession(
	ctx context.Context, params CreateSessionParams,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (player_id, difficulty, state)
		VALUES (@player_id, @difficulty, @state)
		RETURNING *;`,
		pgx.NamedArgs{
			"player_id":  params.PlayerID,
			"difficulty": params.Difficulty,
			"state":      params.State,
		},
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q *Queries) GetSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateSessionParams struct {
	GameSessionID int64
	Mistakes      *int32
	Won           *bool
	Forfeited     *bool
	EndedAt       *time.Time
	State         *[]byte
}

func (p UpdateSessionParams) setClause() (string, pgx.NamedArgs) {
	parts := []string{"updated_at = now()"}
	args := pgx.NamedArgs{}

	if p.Mistakes != nil {
		parts = append(parts, "mistakes = @mistakes")
		args["mistakes"] = *p.Mistakes
	}
	if p.Won != nil {
		parts = append(parts, "won = @won")
		args["won"] = *p.Won
	}
	if p.Forfeited != nil {
		parts = append(parts, "forfeited = @forfeited")
		args["forfeited"] = *p.Forfeited
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q *Queries) UpdateSession(
	ctx context.Context, params UpdateSessionParams,
) (*GameSession, error) {
	setClause, args := params.setClause()
	args["game_session_id"] = params.GameSessionID
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
