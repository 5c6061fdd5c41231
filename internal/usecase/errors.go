package usecase

import "errors"

// ErrInvalidInput marks argument-shape problems caught before any
// repository call. Business-rule violations carry the domain
// sentinels (match.ErrSameTeam, matchevent.ErrMinuteOutOfRange, ...).
var ErrInvalidInput = errors.New("invalid input")
