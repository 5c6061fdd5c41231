package match

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("match not found")
	ErrSameTeam   = errors.New("home and away teams must be different")
	ErrNoReferees = errors.New("at least one referee required")
	ErrClosed     = errors.New("cannot add event to finished/cancelled match")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further event-driven transition is
// allowed from s. Finished and cancelled matches reject new events.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// Match is one fixture between two teams inside a tournament.
type Match struct {
	ID           int64
	TournamentID int64
	HomeTeamID   int64
	AwayTeamID   int64
	StartTime    time.Time
	Status       Status
	IsOvertime   bool
}

// Summary is a denormalized display row. Name fields are pointers
// because the list query uses outer joins: a dangling tournament or
// team reference renders as nil instead of dropping the row.
type Summary struct {
	MatchID        int64
	TournamentName *string
	HomeTeamName   *string
	AwayTeamName   *string
	StartTime      time.Time
	Status         Status
	IsOvertime     bool
}
