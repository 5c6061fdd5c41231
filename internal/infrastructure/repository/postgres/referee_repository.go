package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/school-tournament/internal/domain/referee"
)

type RefereeRepository struct {
	store *Store
}

func NewRefereeRepository(store *Store) *RefereeRepository {
	return &RefereeRepository{store: store}
}

type refereeRow struct {
	ID       int64  `db:"referee_id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Level    string `db:"level"`
	Active   bool   `db:"active"`
}

func (r refereeRow) toDomain() referee.Referee {
	return referee.Referee{
		ID:       r.ID,
		FullName: r.FullName,
		Email:    r.Email,
		Level:    referee.Level(r.Level),
		Active:   r.Active,
	}
}

func (r *RefereeRepository) GetByID(ctx context.Context, id int64) (referee.Referee, error) {
	const query = `
SELECT referee_id, full_name, email, level, active
FROM referee
WHERE referee_id = $1`

	var row refereeRow
	if err := r.store.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return referee.Referee{}, referee.ErrNotFound
		}
		return referee.Referee{}, crerr.Wrapf(err, "get referee %d", id)
	}
	return row.toDomain(), nil
}

func (r *RefereeRepository) List(ctx context.Context, activeOnly bool) ([]referee.Referee, error) {
	query := `
SELECT referee_id, full_name, email, level, active
FROM referee`
	if activeOnly {
		query += `
WHERE active = TRUE`
	}
	query += `
ORDER BY full_name`

	var rows []refereeRow
	if err := r.store.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list referees")
	}

	out := make([]referee.Referee, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RefereeRepository) Insert(ctx context.Context, ref referee.Referee) (int64, error) {
	const query = `
INSERT INTO referee (full_name, email, level, active)
VALUES ($1, $2, $3, $4)
RETURNING referee_id`

	var id int64
	err := r.store.db.QueryRowContext(ctx, query, ref.FullName, ref.Email, string(ref.Level), ref.Active).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, crerr.Wrapf(err, "insert referee: email %q already registered", ref.Email)
		}
		return 0, crerr.Wrap(err, "insert referee")
	}
	return id, nil
}

func (r *RefereeRepository) Update(ctx context.Context, ref referee.Referee) error {
	const query = `
UPDATE referee
SET full_name = $1, email = $2, level = $3, active = $4
WHERE referee_id = $5`

	res, err := r.store.db.ExecContext(ctx, query, ref.FullName, ref.Email, string(ref.Level), ref.Active, ref.ID)
	if err != nil {
		return crerr.Wrapf(err, "update referee %d", ref.ID)
	}
	return checkRowsAffected(res, referee.ErrNotFound)
}

func (r *RefereeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM referee WHERE referee_id = $1`

	res, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return crerr.Wrapf(err, "delete referee %d", id)
	}
	return checkRowsAffected(res, referee.ErrNotFound)
}
