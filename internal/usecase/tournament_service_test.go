package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
)

func newTournamentService() *TournamentService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTournamentService(memory.NewTournamentRepository(memory.SeedTournaments()), logger)
}

func TestTournamentCreateValidation(t *testing.T) {
	svc := newTournamentService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, TournamentInput{StartDate: time.Now()}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing name error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := svc.Create(ctx, TournamentInput{Name: "Autumn Cup"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing start date error = %v, want %v", err, ErrInvalidInput)
	}

	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	_, err := svc.Create(ctx, TournamentInput{Name: "Autumn Cup", StartDate: start, EndDate: &end})
	if !errors.Is(err, tournament.ErrInvalidDateRange) {
		t.Fatalf("end before start error = %v, want %v", err, tournament.ErrInvalidDateRange)
	}
}

func TestTournamentLifecycle(t *testing.T) {
	svc := newTournamentService()
	ctx := context.Background()

	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 21)
	id, err := svc.Create(ctx, TournamentInput{Name: "Autumn Cup", StartDate: start, EndDate: &end, IsActive: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Autumn Cup" || !got.IsActive {
		t.Fatalf("got = %+v", got)
	}

	// an open-ended tournament drops its end date on update
	if err := svc.Update(ctx, id, TournamentInput{Name: "Autumn Cup", StartDate: start, IsActive: true}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err = svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.EndDate != nil {
		t.Fatalf("end date = %v, want nil", got.EndDate)
	}

	if err := svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, id); !errors.Is(err, tournament.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want %v", err, tournament.ErrNotFound)
	}
}
