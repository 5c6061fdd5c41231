package team

import "errors"

var ErrNotFound = errors.New("team not found")

// Team is a class team. Teams are soft-deleted so historic matches and
// players keep a valid reference.
type Team struct {
	ID        int64
	Name      string
	ClassName string
	Rating    float64
	IsDeleted bool
}
