package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/player"
)

type PlayerInput struct {
	TeamID    int64
	FirstName string
	LastName  string
	BirthDate time.Time
	Position  player.Position
}

type PlayerService struct {
	repo   player.Repository
	logger *slog.Logger
}

func NewPlayerService(repo player.Repository, logger *slog.Logger) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerService{repo: repo, logger: logger}
}

func (s *PlayerService) Create(ctx context.Context, input PlayerInput) (int64, error) {
	ctx, span := startSpan(ctx, "PlayerService.Create")
	defer span.End()

	p, err := playerFromInput(input)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", id, "team_id", p.TeamID)
	return id, nil
}

// Update reassigns the player to input.TeamID when it differs; a
// player has exactly one owning team at a time.
func (s *PlayerService) Update(ctx context.Context, id int64, input PlayerInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	p, err := playerFromInput(input)
	if err != nil {
		return err
	}
	p.ID = id

	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update player %d: %w", id, err)
	}
	return nil
}

func (s *PlayerService) Get(ctx context.Context, id int64) (player.Player, error) {
	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *PlayerService) ListAll(ctx context.Context) ([]player.Player, error) {
	return s.repo.ListAll(ctx)
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID int64) ([]player.Player, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	return s.repo.ListByTeam(ctx, teamID)
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete player %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "player deleted", "player_id", id)
	return nil
}

func playerFromInput(input PlayerInput) (player.Player, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if input.TeamID <= 0 {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if firstName == "" || lastName == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if input.BirthDate.IsZero() {
		return player.Player{}, fmt.Errorf("%w: birth date is required", ErrInvalidInput)
	}
	if !input.Position.Valid() {
		return player.Player{}, fmt.Errorf("%w: %q", player.ErrInvalidPosition, input.Position)
	}

	return player.Player{
		TeamID:    input.TeamID,
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: input.BirthDate,
		Position:  input.Position,
	}, nil
}
