package postgres

import (
	"context"
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

type TournamentRepository struct {
	store *Store
}

func NewTournamentRepository(store *Store) *TournamentRepository {
	return &TournamentRepository{store: store}
}

type tournamentRow struct {
	ID        int64        `db:"tournament_id"`
	Name      string       `db:"name"`
	StartDate time.Time    `db:"start_date"`
	EndDate   sql.NullTime `db:"end_date"`
	IsActive  bool         `db:"is_active"`
}

func (r tournamentRow) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:        r.ID,
		Name:      r.Name,
		StartDate: r.StartDate,
		EndDate:   nullTimePtr(r.EndDate),
		IsActive:  r.IsActive,
	}
}

func (r *TournamentRepository) GetByID(ctx context.Context, id int64) (tournament.Tournament, error) {
	const query = `
SELECT tournament_id, name, start_date, end_date, is_active
FROM tournament
WHERE tournament_id = $1`

	var row tournamentRow
	if err := r.store.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, tournament.ErrNotFound
		}
		return tournament.Tournament{}, crerr.Wrapf(err, "get tournament %d", id)
	}
	return row.toDomain(), nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	const query = `
SELECT tournament_id, name, start_date, end_date, is_active
FROM tournament
ORDER BY start_date DESC`

	var rows []tournamentRow
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list tournaments")
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TournamentRepository) Insert(ctx context.Context, t tournament.Tournament) (int64, error) {
	const query = `
INSERT INTO tournament (name, start_date, end_date, is_active)
VALUES ($1, $2, $3, $4)
RETURNING tournament_id`

	var id int64
	err := r.store.db.QueryRowContext(ctx, query, t.Name, t.StartDate, nullTime(t.EndDate), t.IsActive).Scan(&id)
	if err != nil {
		return 0, crerr.Wrap(err, "insert tournament")
	}
	return id, nil
}

func (r *TournamentRepository) Update(ctx context.Context, t tournament.Tournament) error {
	const query = `
UPDATE tournament
SET name = $1, start_date = $2, end_date = $3, is_active = $4
WHERE tournament_id = $5`

	res, err := r.store.db.ExecContext(ctx, query, t.Name, t.StartDate, nullTime(t.EndDate), t.IsActive, t.ID)
	if err != nil {
		return crerr.Wrapf(err, "update tournament %d", t.ID)
	}
	return checkRowsAffected(res, tournament.ErrNotFound)
}

func (r *TournamentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM tournament WHERE tournament_id = $1`

	res, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return crerr.Wrapf(err, "delete tournament %d", id)
	}
	return checkRowsAffected(res, tournament.ErrNotFound)
}
