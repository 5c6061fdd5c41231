package postgres

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

type matchRow struct {
	ID           int64     `db:"match_id"`
	TournamentID int64     `db:"tournament_id"`
	HomeTeamID   int64     `db:"home_team_id"`
	AwayTeamID   int64     `db:"away_team_id"`
	StartTime    time.Time `db:"start_time"`
	Status       string    `db:"status"`
	IsOvertime   bool      `db:"is_overtime"`
}

func (r matchRow) toDomain() match.Match {
	return match.Match{
		ID:           r.ID,
		TournamentID: r.TournamentID,
		HomeTeamID:   r.HomeTeamID,
		AwayTeamID:   r.AwayTeamID,
		StartTime:    r.StartTime,
		Status:       match.Status(r.Status),
		IsOvertime:   r.IsOvertime,
	}
}

const matchColumns = `match_id, tournament_id, home_team_id, away_team_id, start_time, status, is_overtime`

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
WHERE match_id = $1`

	var row matchRow
	if err := r.store.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, crerr.Wrapf(err, "get match %d", id)
	}
	return row.toDomain(), nil
}

func (r *MatchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
WHERE tournament_id = $1
ORDER BY start_time DESC`

	var rows []matchRow
	if err := r.store.db.SelectContext(ctx, &rows, query, tournamentID); err != nil {
		return nil, crerr.Wrapf(err, "list matches for tournament %d", tournamentID)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Insert(ctx context.Context, m match.Match) (int64, error) {
	if m.HomeTeamID == m.AwayTeamID {
		return 0, match.ErrSameTeam
	}

	id, err := insertMatch(ctx, r.store.db, m)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	if m.HomeTeamID == m.AwayTeamID {
		return match.ErrSameTeam
	}

	// No locking read here: a plain update racing a concurrent
	// AddGoal on the same match is last-write-wins at commit. The
	// goal path is the only serialized mutator.
	const query = `
UPDATE matches
SET tournament_id = $1, home_team_id = $2, away_team_id = $3, start_time = $4, status = $5, is_overtime = $6
WHERE match_id = $7`

	res, err := r.store.db.ExecContext(ctx, query,
		m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.StartTime, string(m.Status), m.IsOvertime, m.ID)
	if err != nil {
		return crerr.Wrapf(err, "update match %d", m.ID)
	}
	return checkRowsAffected(res, match.ErrNotFound)
}

// Delete removes the referee association rows and the match row in one
// transaction. A missing match aborts with ErrNotFound, so a delete
// never silently strips associations without removing the match.
func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM match_referee WHERE match_id = $1`, id); err != nil {
			return crerr.Wrapf(err, "delete referees of match %d", id)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE match_id = $1`, id)
		if err != nil {
			return crerr.Wrapf(err, "delete match %d", id)
		}
		return checkRowsAffected(res, match.ErrNotFound)
	})
}

// CreateWithReferees inserts the match and its referee assignments as
// a unit. Business rules are checked before any write so a rejected
// call leaves no partial state and takes no locks.
func (r *MatchRepository) CreateWithReferees(ctx context.Context, m match.Match, refereeIDs []int64) (int64, error) {
	if len(refereeIDs) == 0 {
		return 0, match.ErrNoReferees
	}
	if m.HomeTeamID == m.AwayTeamID {
		return 0, match.ErrSameTeam
	}

	var matchID int64
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		id, err := insertMatch(ctx, tx, m)
		if err != nil {
			return err
		}
		matchID = id

		return insertMatchReferees(ctx, tx, matchID, refereeIDs)
	})
	if err != nil {
		return 0, err
	}
	return matchID, nil
}

// SetReferees replaces the full referee set of a match. Replace, not
// diff: every existing association row goes, the supplied set comes
// in. Concurrent replaces race last-write-wins at commit.
func (r *MatchRepository) SetReferees(ctx context.Context, matchID int64, refereeIDs []int64) error {
	if len(refereeIDs) == 0 {
		return match.ErrNoReferees
	}

	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		var exists int64
		err := tx.QueryRowContext(ctx, `SELECT match_id FROM matches WHERE match_id = $1`, matchID).Scan(&exists)
		if err != nil {
			if isNotFound(err) {
				return match.ErrNotFound
			}
			return crerr.Wrapf(err, "check match %d", matchID)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM match_referee WHERE match_id = $1`, matchID); err != nil {
			return crerr.Wrapf(err, "clear referees of match %d", matchID)
		}

		return insertMatchReferees(ctx, tx, matchID, refereeIDs)
	})
}

func (r *MatchRepository) RefereeIDs(ctx context.Context, matchID int64) ([]int64, error) {
	const query = `
SELECT referee_id
FROM match_referee
WHERE match_id = $1
ORDER BY referee_id`

	var ids []int64
	if err := r.store.db.SelectContext(ctx, &ids, query, matchID); err != nil {
		return nil, crerr.Wrapf(err, "referee ids of match %d", matchID)
	}
	return ids, nil
}

// ListWithNames returns display rows for the 200 most recent matches.
// LEFT JOINs keep rows whose tournament or team reference dangles;
// those render with nil names instead of disappearing.
func (r *MatchRepository) ListWithNames(ctx context.Context) ([]match.Summary, error) {
	const query = `
SELECT
    m.match_id,
    t.name  AS tournament_name,
    ht.name AS home_team_name,
    aw.name AS away_team_name,
    m.start_time,
    m.status,
    m.is_overtime
FROM matches m
LEFT JOIN tournament t ON t.tournament_id = m.tournament_id
LEFT JOIN team ht ON ht.team_id = m.home_team_id
LEFT JOIN team aw ON aw.team_id = m.away_team_id
ORDER BY m.start_time DESC, m.match_id DESC
LIMIT 200`

	rows, err := r.store.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, crerr.Wrap(err, "list matches with names")
	}
	defer rows.Close()

	out := make([]match.Summary, 0, 64)
	for rows.Next() {
		var row matchSummaryRow
		if err := rows.StructScan(&row); err != nil {
			return nil, crerr.Wrap(err, "scan match summary row")
		}
		out = append(out, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, crerr.Wrap(err, "iterate match summary rows")
	}
	return out, nil
}

// insertMatch and insertMatchReferees take sqlx.ExtContext so the
// same statements serve the plain insert and the transactional paths.
func insertMatch(ctx context.Context, q sqlx.ExtContext, m match.Match) (int64, error) {
	const query = `
INSERT INTO matches (tournament_id, home_team_id, away_team_id, start_time, status, is_overtime)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING match_id`

	var id int64
	err := q.QueryRowxContext(ctx, query,
		m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.StartTime, string(m.Status), m.IsOvertime).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, crerr.Wrap(err, "insert match: dangling tournament or team reference")
		}
		return 0, crerr.Wrap(err, "insert match")
	}
	return id, nil
}

func insertMatchReferees(ctx context.Context, q sqlx.ExtContext, matchID int64, refereeIDs []int64) error {
	const query = `INSERT INTO match_referee (match_id, referee_id) VALUES ($1, $2)`

	for _, refereeID := range refereeIDs {
		if _, err := q.ExecContext(ctx, query, matchID, refereeID); err != nil {
			if isForeignKeyViolation(err) {
				return crerr.Wrapf(err, "assign referee %d to match %d: referee does not exist", refereeID, matchID)
			}
			if isUniqueViolation(err) {
				return crerr.Wrapf(err, "assign referee %d to match %d: duplicate assignment", refereeID, matchID)
			}
			return crerr.Wrapf(err, "assign referee %d to match %d", refereeID, matchID)
		}
	}
	return nil
}
