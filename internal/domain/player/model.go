package player

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("player not found")
	ErrInvalidPosition = errors.New("invalid player position")
)

type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionDefender   Position = "DEF"
	PositionMidfielder Position = "MID"
	PositionAttacker   Position = "ATT"
)

func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionAttacker:
		return true
	default:
		return false
	}
}

// Player belongs to exactly one team at a time; reassignment happens
// through Update.
type Player struct {
	ID        int64
	TeamID    int64
	FirstName string
	LastName  string
	BirthDate time.Time
	Position  Position
}
