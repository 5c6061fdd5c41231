package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riskibarqy/school-tournament/internal/domain/matchevent"
)

// AddGoalInput carries the goal payload. PlayerID may be nil when the
// scorer was not identified at entry time.
type AddGoalInput struct {
	MatchID  int64
	TeamID   int64
	PlayerID *int64
	Minute   int
	XG       *float64
}

// RecordEventInput covers the non-goal event types (cards, own goals)
// which attach without driving the status machine.
type RecordEventInput struct {
	MatchID  int64
	TeamID   int64
	PlayerID *int64
	Minute   int
	Type     matchevent.Type
	XG       *float64
}

type MatchEventService struct {
	repo   matchevent.Repository
	logger *slog.Logger
}

func NewMatchEventService(repo matchevent.Repository, logger *slog.Logger) *MatchEventService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchEventService{repo: repo, logger: logger}
}

// AddGoal appends a goal and, for a scheduled match, starts it in the
// same transaction behind the repository's locking read.
func (s *MatchEventService) AddGoal(ctx context.Context, input AddGoalInput) (int64, error) {
	ctx, span := startSpan(ctx, "MatchEventService.AddGoal")
	defer span.End()

	if input.MatchID <= 0 {
		return 0, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.TeamID <= 0 {
		return 0, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	id, err := s.repo.AddGoal(ctx, matchevent.AddGoalParams{
		MatchID:  input.MatchID,
		TeamID:   input.TeamID,
		PlayerID: input.PlayerID,
		Minute:   input.Minute,
		XG:       input.XG,
	})
	if err != nil {
		return 0, fmt.Errorf("add goal to match %d: %w", input.MatchID, err)
	}

	s.logger.InfoContext(ctx, "goal recorded",
		"event_id", id,
		"match_id", input.MatchID,
		"team_id", input.TeamID,
		"minute", input.Minute,
	)
	return id, nil
}

func (s *MatchEventService) RecordEvent(ctx context.Context, input RecordEventInput) (int64, error) {
	ctx, span := startSpan(ctx, "MatchEventService.RecordEvent")
	defer span.End()

	if input.MatchID <= 0 {
		return 0, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.TeamID <= 0 {
		return 0, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if !input.Type.Valid() {
		return 0, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, input.Type)
	}

	id, err := s.repo.Insert(ctx, matchevent.Event{
		MatchID:  input.MatchID,
		PlayerID: input.PlayerID,
		TeamID:   input.TeamID,
		Minute:   input.Minute,
		Type:     input.Type,
		XG:       input.XG,
	})
	if err != nil {
		return 0, fmt.Errorf("record %s event for match %d: %w", input.Type, input.MatchID, err)
	}
	return id, nil
}

// Timeline lists a match's events in display order: minute ascending,
// ties by creation time.
func (s *MatchEventService) Timeline(ctx context.Context, matchID int64) ([]matchevent.Event, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.repo.ListByMatch(ctx, matchID)
}

func (s *MatchEventService) Get(ctx context.Context, id int64) (matchevent.Event, error) {
	if id <= 0 {
		return matchevent.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

// Correct rewrites an event in place. Events are append-only except
// for this explicit correction path.
func (s *MatchEventService) Correct(ctx context.Context, e matchevent.Event) error {
	if e.ID <= 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, e.Type)
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return fmt.Errorf("correct event %d: %w", e.ID, err)
	}
	return nil
}

func (s *MatchEventService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "match event deleted", "event_id", id)
	return nil
}
