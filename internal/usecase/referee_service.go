package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riskibarqy/school-tournament/internal/domain/referee"
)

type RefereeInput struct {
	FullName string
	Email    string
	Level    referee.Level
	Active   bool
}

type RefereeService struct {
	repo   referee.Repository
	logger *slog.Logger
}

func NewRefereeService(repo referee.Repository, logger *slog.Logger) *RefereeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RefereeService{repo: repo, logger: logger}
}

func (s *RefereeService) Create(ctx context.Context, input RefereeInput) (int64, error) {
	ctx, span := startSpan(ctx, "RefereeService.Create")
	defer span.End()

	ref, err := refereeFromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("insert referee: %w", err)
	}

	s.logger.InfoContext(ctx, "referee created", "referee_id", id, "level", string(ref.Level))
	return id, nil
}

func (s *RefereeService) Update(ctx context.Context, id int64, input RefereeInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	ref, err := refereeFromInput(input)
	if err != nil {
		return err
	}
	ref.ID = id

	if err := s.repo.Update(ctx, ref); err != nil {
		return fmt.Errorf("update referee %d: %w", id, err)
	}
	return nil
}

func (s *RefereeService) Get(ctx context.Context, id int64) (referee.Referee, error) {
	if id <= 0 {
		return referee.Referee{}, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *RefereeService) List(ctx context.Context, activeOnly bool) ([]referee.Referee, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *RefereeService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete referee %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "referee deleted", "referee_id", id)
	return nil
}

func refereeFromInput(input RefereeInput) (referee.Referee, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee name is required", ErrInvalidInput)
	}
	if email == "" {
		return referee.Referee{}, fmt.Errorf("%w: referee email is required", ErrInvalidInput)
	}
	if !input.Level.Valid() {
		return referee.Referee{}, fmt.Errorf("%w: %q", referee.ErrInvalidLevel, input.Level)
	}

	return referee.Referee{
		FullName: fullName,
		Email:    email,
		Level:    input.Level,
		Active:   input.Active,
	}, nil
}
