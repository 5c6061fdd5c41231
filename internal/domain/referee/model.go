package referee

import "errors"

var (
	ErrNotFound     = errors.New("referee not found")
	ErrInvalidLevel = errors.New("invalid referee level")
)

type Level string

const (
	LevelStudent  Level = "student"
	LevelTeacher  Level = "teacher"
	LevelExternal Level = "external"
)

func (l Level) Valid() bool {
	switch l {
	case LevelStudent, LevelTeacher, LevelExternal:
		return true
	default:
		return false
	}
}

type Referee struct {
	ID       int64
	FullName string
	Email    string
	Level    Level
	Active   bool
}
