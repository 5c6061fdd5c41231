package matchevent

import "context"

// AddGoalParams carries the goal-event payload for the transactional
// insert. XG is the optional expected-goals metric.
type AddGoalParams struct {
	MatchID  int64
	TeamID   int64
	PlayerID *int64
	Minute   int
	XG       *float64
}

// Repository appends match events and drives the match status machine.
//
// AddGoal is the one operation that serializes against concurrent
// writers: it takes a locking read of the match row, rejects terminal
// statuses, inserts the goal event and, when the match was still
// scheduled, flips it to live inside the same transaction.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Event, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
	Insert(ctx context.Context, e Event) (int64, error)
	Update(ctx context.Context, e Event) error
	Delete(ctx context.Context, id int64) error

	AddGoal(ctx context.Context, params AddGoalParams) (int64, error)
}
