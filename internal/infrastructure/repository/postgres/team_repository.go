package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

type teamRow struct {
	ID        int64   `db:"team_id"`
	Name      string  `db:"name"`
	ClassName string  `db:"class_name"`
	Rating    float64 `db:"rating"`
	IsDeleted bool    `db:"is_deleted"`
}

func (r teamRow) toDomain() team.Team {
	return team.Team{
		ID:        r.ID,
		Name:      r.Name,
		ClassName: r.ClassName,
		Rating:    r.Rating,
		IsDeleted: r.IsDeleted,
	}
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64, includeDeleted bool) (team.Team, error) {
	query := `
SELECT team_id, name, class_name, rating, is_deleted
FROM team
WHERE team_id = $1`
	if !includeDeleted {
		query += ` AND is_deleted = FALSE`
	}

	var row teamRow
	if err := r.store.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return team.Team{}, team.ErrNotFound
		}
		return team.Team{}, crerr.Wrapf(err, "get team %d", id)
	}
	return row.toDomain(), nil
}

func (r *TeamRepository) List(ctx context.Context, includeDeleted bool) ([]team.Team, error) {
	query := `
SELECT team_id, name, class_name, rating, is_deleted
FROM team`
	if !includeDeleted {
		query += `
WHERE is_deleted = FALSE`
	}
	query += `
ORDER BY class_name, name`

	var rows []teamRow
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Insert(ctx context.Context, t team.Team) (int64, error) {
	const query = `
INSERT INTO team (name, class_name, rating, is_deleted)
VALUES ($1, $2, $3, $4)
RETURNING team_id`

	var id int64
	err := r.store.db.QueryRowContext(ctx, query, t.Name, t.ClassName, t.Rating, t.IsDeleted).Scan(&id)
	if err != nil {
		return 0, crerr.Wrap(err, "insert team")
	}
	return id, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	const query = `
UPDATE team
SET name = $1, class_name = $2, rating = $3, is_deleted = $4
WHERE team_id = $5`

	res, err := r.store.db.ExecContext(ctx, query, t.Name, t.ClassName, t.Rating, t.IsDeleted, t.ID)
	if err != nil {
		return crerr.Wrapf(err, "update team %d", t.ID)
	}
	return checkRowsAffected(res, team.ErrNotFound)
}

// SoftDelete keeps the row so players and historic matches still
// resolve their team reference.
func (r *TeamRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE team SET is_deleted = TRUE WHERE team_id = $1`

	res, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return crerr.Wrapf(err, "soft delete team %d", id)
	}
	return checkRowsAffected(res, team.ErrNotFound)
}

func (r *TeamRepository) Restore(ctx context.Context, id int64) error {
	const query = `UPDATE team SET is_deleted = FALSE WHERE team_id = $1`

	res, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return crerr.Wrapf(err, "restore team %d", id)
	}
	return checkRowsAffected(res, team.ErrNotFound)
}
