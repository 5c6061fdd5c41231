package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

// TournamentInput is the incoming payload for create/update.
type TournamentInput struct {
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
}

type TournamentService struct {
	repo   tournament.Repository
	logger *slog.Logger
}

func NewTournamentService(repo tournament.Repository, logger *slog.Logger) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentService{repo: repo, logger: logger}
}

func (s *TournamentService) Create(ctx context.Context, input TournamentInput) (int64, error) {
	ctx, span := startSpan(ctx, "TournamentService.Create")
	defer span.End()

	t, err := tournamentFromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("insert tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament created", "tournament_id", id, "name", t.Name)
	return id, nil
}

func (s *TournamentService) Update(ctx context.Context, id int64, input TournamentInput) error {
	ctx, span := startSpan(ctx, "TournamentService.Update")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	t, err := tournamentFromInput(input)
	if err != nil {
		return err
	}
	t.ID = id

	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("update tournament %d: %w", id, err)
	}
	return nil
}

func (s *TournamentService) Get(ctx context.Context, id int64) (tournament.Tournament, error) {
	if id <= 0 {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	return s.repo.List(ctx)
}

func (s *TournamentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tournament %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "tournament deleted", "tournament_id", id)
	return nil
}

func tournamentFromInput(input TournamentInput) (tournament.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}
	if input.StartDate.IsZero() {
		return tournament.Tournament{}, fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	t := tournament.Tournament{
		Name:      name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		IsActive:  input.IsActive,
	}
	if err := t.ValidateDates(); err != nil {
		return tournament.Tournament{}, err
	}
	return t, nil
}
