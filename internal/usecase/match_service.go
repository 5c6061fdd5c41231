package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
)

// MatchInput is the incoming payload for scheduling a match. Status
// defaults to scheduled when empty; administrative overrides (finish,
// cancel) go through Update with an explicit status.
type MatchInput struct {
	TournamentID int64
	HomeTeamID   int64
	AwayTeamID   int64
	StartTime    time.Time
	Status       match.Status
	IsOvertime   bool
}

type MatchService struct {
	repo   match.Repository
	logger *slog.Logger
}

func NewMatchService(repo match.Repository, logger *slog.Logger) *MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatchService{repo: repo, logger: logger}
}

// CreateWithReferees schedules a match and assigns its referees in a
// single transaction. Either the match row and every association row
// land, or nothing does.
func (s *MatchService) CreateWithReferees(ctx context.Context, input MatchInput, refereeIDs []int64) (int64, error) {
	ctx, span := startSpan(ctx, "MatchService.CreateWithReferees")
	defer span.End()

	m, err := matchFromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.CreateWithReferees(ctx, m, refereeIDs)
	if err != nil {
		return 0, fmt.Errorf("create match with referees: %w", err)
	}

	s.logger.InfoContext(ctx, "match created",
		"match_id", id,
		"tournament_id", m.TournamentID,
		"home_team_id", m.HomeTeamID,
		"away_team_id", m.AwayTeamID,
		"referee_count", len(refereeIDs),
	)
	return id, nil
}

// SetReferees replaces the full referee set of the match.
func (s *MatchService) SetReferees(ctx context.Context, matchID int64, refereeIDs []int64) error {
	ctx, span := startSpan(ctx, "MatchService.SetReferees")
	defer span.End()

	if matchID <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.repo.SetReferees(ctx, matchID, refereeIDs); err != nil {
		return fmt.Errorf("set referees of match %d: %w", matchID, err)
	}

	s.logger.InfoContext(ctx, "match referees replaced",
		"match_id", matchID,
		"referee_count", len(refereeIDs),
	)
	return nil
}

func (s *MatchService) RefereeIDs(ctx context.Context, matchID int64) ([]int64, error) {
	if matchID <= 0 {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.repo.RefereeIDs(ctx, matchID)
}

func (s *MatchService) Get(ctx context.Context, id int64) (match.Match, error) {
	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *MatchService) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Match, error) {
	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	return s.repo.ListByTournament(ctx, tournamentID)
}

func (s *MatchService) ListWithNames(ctx context.Context) ([]match.Summary, error) {
	return s.repo.ListWithNames(ctx)
}

// Update is the administrative override path: it can move a match to
// finished or cancelled directly. It does not take the goal-path row
// lock; see the repository contract.
func (s *MatchService) Update(ctx context.Context, id int64, input MatchInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	m, err := matchFromInput(input)
	if err != nil {
		return err
	}
	m.ID = id

	if err := s.repo.Update(ctx, m); err != nil {
		return fmt.Errorf("update match %d: %w", id, err)
	}
	return nil
}

// Delete removes the match and its referee associations atomically.
func (s *MatchService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete match %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "match deleted", "match_id", id)
	return nil
}

func matchFromInput(input MatchInput) (match.Match, error) {
	if input.TournamentID <= 0 {
		return match.Match{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if input.HomeTeamID <= 0 || input.AwayTeamID <= 0 {
		return match.Match{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if input.StartTime.IsZero() {
		return match.Match{}, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = match.StatusScheduled
	}
	if !status.Valid() {
		return match.Match{}, fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, input.Status)
	}

	return match.Match{
		TournamentID: input.TournamentID,
		HomeTeamID:   input.HomeTeamID,
		AwayTeamID:   input.AwayTeamID,
		StartTime:    input.StartTime,
		Status:       status,
		IsOvertime:   input.IsOvertime,
	}, nil
}
