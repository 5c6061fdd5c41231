package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

type playerRow struct {
	ID        int64     `db:"player_id"`
	TeamID    int64     `db:"team_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	BirthDate time.Time `db:"birth_date"`
	Position  string    `db:"position"`
}

func (r playerRow) toDomain() player.Player {
	return player.Player{
		ID:        r.ID,
		TeamID:    r.TeamID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Position:  player.Position(r.Position),
	}
}

const playerColumns = `player_id, team_id, first_name, last_name, birth_date, position`

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM player
WHERE player_id = $1`

	var row playerRow
	if err := r.store.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return player.Player{}, player.ErrNotFound
		}
		return player.Player{}, crerr.Wrapf(err, "get player %d", id)
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM player
ORDER BY last_name, first_name`

	return r.selectPlayers(ctx, query)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	const query = `
SELECT ` + playerColumns + `
FROM player
WHERE team_id = $1
ORDER BY last_name, first_name`

	return r.selectPlayers(ctx, query, teamID)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, query string, args ...any) ([]player.Player, error) {
	var rows []playerRow
	if err := r.store.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) (int64, error) {
	const query = `
INSERT INTO player (team_id, first_name, last_name, birth_date, position)
VALUES ($1, $2, $3, $4, $5)
RETURNING player_id`

	var id int64
	err := r.store.db.QueryRowContext(ctx, query, p.TeamID, p.FirstName, p.LastName, p.BirthDate, string(p.Position)).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, crerr.Wrapf(err, "insert player: team %d does not exist", p.TeamID)
		}
		return 0, crerr.Wrap(err, "insert player")
	}
	return id, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	const query = `
UPDATE player
SET team_id = $1, first_name = $2, last_name = $3, birth_date = $4, position = $5
WHERE player_id = $6`

	res, err := r.store.db.ExecContext(ctx, query, p.TeamID, p.FirstName, p.LastName, p.BirthDate, string(p.Position), p.ID)
	if err != nil {
		return crerr.Wrapf(err, "update player %d", p.ID)
	}
	return checkRowsAffected(res, player.ErrNotFound)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM player WHERE player_id = $1`

	res, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return crerr.Wrapf(err, "delete player %d", id)
	}
	return checkRowsAffected(res, player.ErrNotFound)
}
