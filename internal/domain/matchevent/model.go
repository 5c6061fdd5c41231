package matchevent

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("match event not found")
	ErrMinuteOutOfRange = errors.New("minute out of range (0..200)")
)

type Type string

const (
	TypeGoal    Type = "goal"
	TypeOwnGoal Type = "own_goal"
	TypeYellow  Type = "yellow"
	TypeRed     Type = "red"
)

func (t Type) Valid() bool {
	switch t {
	case TypeGoal, TypeOwnGoal, TypeYellow, TypeRed:
		return true
	default:
		return false
	}
}

// Minutes above 90 cover extension and penalty shootouts; 200 leaves
// headroom for data-entry of multi-period school formats.
const (
	MinMinute = 0
	MaxMinute = 200
)

func MinuteInRange(minute int) bool {
	return minute >= MinMinute && minute <= MaxMinute
}

// Event is one scoring or disciplinary record. PlayerID is optional:
// a goal can be recorded before the scorer is known. Events order
// within a match by (minute, created_at).
type Event struct {
	ID        int64
	MatchID   int64
	PlayerID  *int64
	TeamID    int64
	Minute    int
	Type      Type
	XG        *float64
	CreatedAt time.Time
}
