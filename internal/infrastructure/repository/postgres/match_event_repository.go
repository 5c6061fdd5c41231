package postgres

import (
	"context"
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/matchevent"
)

type MatchEventRepository struct {
	store *Store
	now   func() time.Time
}

func NewMatchEventRepository(store *Store) *MatchEventRepository {
	return &MatchEventRepository{
		store: store,
		now:   time.Now,
	}
}

type matchEventRow struct {
	ID        int64           `db:"event_id"`
	MatchID   int64           `db:"match_id"`
	PlayerID  sql.NullInt64   `db:"player_id"`
	TeamID    int64           `db:"team_id"`
	Minute    int             `db:"minute"`
	Type      string          `db:"event_type"`
	XG        sql.NullFloat64 `db:"xg"`
	CreatedAt time.Time       `db:"created_at"`
}

func (r matchEventRow) toDomain() matchevent.Event {
	return matchevent.Event{
		ID:        r.ID,
		MatchID:   r.MatchID,
		PlayerID:  nullInt64Ptr(r.PlayerID),
		TeamID:    r.TeamID,
		Minute:    r.Minute,
		Type:      matchevent.Type(r.Type),
		XG:        nullFloat64Ptr(r.XG),
		CreatedAt: r.CreatedAt,
	}
}

const matchEventColumns = `event_id, match_id, player_id, team_id, minute, event_type, xg, created_at`

func (r *MatchEventRepository) GetByID(ctx context.Context, id int64) (matchevent.Event, error) {
	const query = `
SELECT ` + matchEventColumns + `
FROM match_event
WHERE event_id = $1`

	var row matchEventRow
	if err := r.store.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return matchevent.Event{}, matchevent.ErrNotFound
		}
		return matchevent.Event{}, crerr.Wrapf(err, "get match event %d", id)
	}
	return row.toDomain(), nil
}

// ListByMatch orders by (minute, created_at). Timeline rendering
// depends on this ordering; do not change it without changing the
// consumers.
func (r *MatchEventRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchevent.Event, error) {
	const query = `
SELECT ` + matchEventColumns + `
FROM match_event
WHERE match_id = $1
ORDER BY minute, created_at`

	var rows []matchEventRow
	if err := r.store.db.SelectContext(ctx, &rows, query, matchID); err != nil {
		return nil, crerr.Wrapf(err, "list events of match %d", matchID)
	}

	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchEventRepository) Insert(ctx context.Context, e matchevent.Event) (int64, error) {
	if !matchevent.MinuteInRange(e.Minute) {
		return 0, matchevent.ErrMinuteOutOfRange
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}

	const query = `
INSERT INTO match_event (match_id, player_id, team_id, minute, event_type, xg, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING event_id`

	var id int64
	err := r.store.db.QueryRowContext(ctx, query,
		e.MatchID, nullInt64(e.PlayerID), e.TeamID, e.Minute, string(e.Type), nullFloat64(e.XG), e.CreatedAt).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, crerr.Wrap(err, "insert match event: dangling match, team or player reference")
		}
		return 0, crerr.Wrap(err, "insert match event")
	}
	return id, nil
}

// Update exists for explicit corrections only; events are otherwise
// append-only.
func (r *MatchEventRepository) Update(ctx context.Context, e matchevent.Event) error {
	if !matchevent.MinuteInRange(e.Minute) {
		return matchevent.ErrMinuteOutOfRange
	}

	const query = `
UPDATE match_event
SET match_id = $1, player_id = $2, team_id = $3, minute = $4, event_type = $5, xg = $6, created_at = $7
WHERE event_id = $8`

	res, err := r.store.db.ExecContext(ctx, query,
		e.MatchID, nullInt64(e.PlayerID), e.TeamID, e.Minute, string(e.Type), nullFloat64(e.XG), e.CreatedAt, e.ID)
	if err != nil {
		return crerr.Wrapf(err, "update match event %d", e.ID)
	}
	return checkRowsAffected(res, matchevent.ErrNotFound)
}

func (r *MatchEventRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM match_event WHERE event_id = $1`

	res, err := r.store.db.ExecContext(ctx, query, id)
	if err != nil {
		return crerr.Wrapf(err, "delete match event %d", id)
	}
	return checkRowsAffected(res, matchevent.ErrNotFound)
}

// AddGoal appends a goal event and drives the status machine in one
// transaction. The FOR UPDATE read serializes concurrent goal
// additions against the same match: two callers both seeing
// "scheduled" and both transitioning is impossible, and an event can
// never attach to a match that turns terminal mid-flight.
func (r *MatchEventRepository) AddGoal(ctx context.Context, params matchevent.AddGoalParams) (int64, error) {
	// Checked before the transaction so an invalid minute never
	// takes the row lock.
	if !matchevent.MinuteInRange(params.Minute) {
		return 0, matchevent.ErrMinuteOutOfRange
	}

	var eventID int64
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		var status string
		err := tx.QueryRowContext(ctx,
			`SELECT status FROM matches WHERE match_id = $1 FOR UPDATE`, params.MatchID).Scan(&status)
		if err != nil {
			if isNotFound(err) {
				return match.ErrNotFound
			}
			return crerr.Wrapf(err, "lock match %d", params.MatchID)
		}

		if match.Status(status).Terminal() {
			return match.ErrClosed
		}

		err = tx.QueryRowContext(ctx, `
INSERT INTO match_event (match_id, player_id, team_id, minute, event_type, xg, created_at)
VALUES ($1, $2, $3, $4, 'goal', $5, $6)
RETURNING event_id`,
			params.MatchID, nullInt64(params.PlayerID), params.TeamID, params.Minute,
			nullFloat64(params.XG), r.now().UTC()).Scan(&eventID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return crerr.Wrap(err, "insert goal event: dangling team or player reference")
			}
			return crerr.Wrap(err, "insert goal event")
		}

		// First goal of a scheduled match starts it. A live match
		// stays live.
		if match.Status(status) == match.StatusScheduled {
			if _, err := tx.ExecContext(ctx,
				`UPDATE matches SET status = $1 WHERE match_id = $2`,
				string(match.StatusLive), params.MatchID); err != nil {
				return crerr.Wrapf(err, "start match %d", params.MatchID)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return eventID, nil
}
