package tournament

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("tournament not found")
	ErrInvalidDateRange = errors.New("tournament end date before start date")
)

// Tournament is one school competition, e.g. a winter indoor cup.
type Tournament struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
}

// ValidateDates enforces the end-after-start invariant. A nil end date
// means the tournament is open-ended and always valid.
func (t Tournament) ValidateDates() error {
	if t.EndDate != nil && t.EndDate.Before(t.StartDate) {
		return ErrInvalidDateRange
	}
	return nil
}
