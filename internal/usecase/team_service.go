package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
)

type TeamInput struct {
	Name      string
	ClassName string
	Rating    float64
}

type TeamService struct {
	repo   team.Repository
	logger *slog.Logger
}

func NewTeamService(repo team.Repository, logger *slog.Logger) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamService{repo: repo, logger: logger}
}

func (s *TeamService) Create(ctx context.Context, input TeamInput) (int64, error) {
	ctx, span := startSpan(ctx, "TeamService.Create")
	defer span.End()

	t, err := teamFromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("insert team: %w", err)
	}

	s.logger.InfoContext(ctx, "team created", "team_id", id, "name", t.Name, "class", t.ClassName)
	return id, nil
}

func (s *TeamService) Update(ctx context.Context, id int64, input TeamInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	t, err := teamFromInput(input)
	if err != nil {
		return err
	}
	t.ID = id

	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("update team %d: %w", id, err)
	}
	return nil
}

func (s *TeamService) Get(ctx context.Context, id int64, includeDeleted bool) (team.Team, error) {
	if id <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id, includeDeleted)
}

func (s *TeamService) List(ctx context.Context, includeDeleted bool) ([]team.Team, error) {
	return s.repo.List(ctx, includeDeleted)
}

// SoftDelete hides the team from default listings; Restore undoes it.
func (s *TeamService) SoftDelete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("soft delete team %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "team soft-deleted", "team_id", id)
	return nil
}

func (s *TeamService) Restore(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.repo.Restore(ctx, id); err != nil {
		return fmt.Errorf("restore team %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "team restored", "team_id", id)
	return nil
}

func teamFromInput(input TeamInput) (team.Team, error) {
	name := strings.TrimSpace(input.Name)
	className := strings.TrimSpace(input.ClassName)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if className == "" {
		return team.Team{}, fmt.Errorf("%w: class name is required", ErrInvalidInput)
	}
	if input.Rating < 0 {
		return team.Team{}, fmt.Errorf("%w: rating cannot be negative", ErrInvalidInput)
	}

	return team.Team{
		Name:      name,
		ClassName: className,
		Rating:    input.Rating,
	}, nil
}
