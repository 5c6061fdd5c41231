package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
)

type matchFixture struct {
	matches  *memory.MatchRepository
	events   *memory.MatchEventRepository
	svc      *MatchService
	eventsvc *MatchEventService
}

func newMatchFixture() *matchFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tournaments := memory.NewTournamentRepository(memory.SeedTournaments())
	teams := memory.NewTeamRepository(memory.SeedTeams())
	referees := memory.NewRefereeRepository(memory.SeedReferees())
	matches := memory.NewMatchRepository(tournaments, teams, referees)
	events := memory.NewMatchEventRepository(matches)

	return &matchFixture{
		matches:  matches,
		events:   events,
		svc:      NewMatchService(matches, logger),
		eventsvc: NewMatchEventService(events, logger),
	}
}

func validMatchInput() MatchInput {
	return MatchInput{
		TournamentID: memory.TournamentIDWinterCup,
		HomeTeamID:   memory.TeamID9A,
		AwayTeamID:   memory.TeamID9B,
		StartTime:    time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC),
	}
}

func TestCreateWithRefereesReadAfterWrite(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	id, err := f.svc.CreateWithReferees(ctx, validMatchInput(), []int64{memory.RefereeIDNovak, memory.RefereeIDSvoboda})
	if err != nil {
		t.Fatalf("CreateWithReferees: %v", err)
	}

	got, err := f.svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after create: %v", err)
	}
	if got.Status != match.StatusScheduled {
		t.Fatalf("status = %q, want %q", got.Status, match.StatusScheduled)
	}

	ids, err := f.svc.RefereeIDs(ctx, id)
	if err != nil {
		t.Fatalf("RefereeIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != memory.RefereeIDNovak || ids[1] != memory.RefereeIDSvoboda {
		t.Fatalf("referee ids = %v, want [%d %d]", ids, memory.RefereeIDNovak, memory.RefereeIDSvoboda)
	}
}

func TestCreateWithRefereesValidation(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	input := validMatchInput()
	input.AwayTeamID = input.HomeTeamID
	if _, err := f.svc.CreateWithReferees(ctx, input, []int64{memory.RefereeIDNovak}); !errors.Is(err, match.ErrSameTeam) {
		t.Fatalf("same team error = %v, want %v", err, match.ErrSameTeam)
	}

	if _, err := f.svc.CreateWithReferees(ctx, validMatchInput(), nil); !errors.Is(err, match.ErrNoReferees) {
		t.Fatalf("empty referees error = %v, want %v", err, match.ErrNoReferees)
	}

	// neither attempt may leave a match behind
	summaries, err := f.svc.ListWithNames(ctx)
	if err != nil {
		t.Fatalf("ListWithNames: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("matches after failed creates = %d, want 0", len(summaries))
	}
}

func TestCreateWithRefereesAtomicOnAssignFailure(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	const missingReferee int64 = 99
	_, err := f.svc.CreateWithReferees(ctx, validMatchInput(), []int64{memory.RefereeIDNovak, missingReferee})
	if err == nil {
		t.Fatal("expected error for unknown referee")
	}

	matches, err := f.svc.ListByTournament(ctx, memory.TournamentIDWinterCup)
	if err != nil {
		t.Fatalf("ListByTournament: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("match rows after failed create = %d, want 0", len(matches))
	}
}

func TestSetRefereesReplacesFullSet(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	id, err := f.svc.CreateWithReferees(ctx, validMatchInput(), []int64{memory.RefereeIDNovak})
	if err != nil {
		t.Fatalf("CreateWithReferees: %v", err)
	}

	if err := f.svc.SetReferees(ctx, id, []int64{memory.RefereeIDSvoboda, memory.RefereeIDExternal}); err != nil {
		t.Fatalf("SetReferees: %v", err)
	}

	ids, err := f.svc.RefereeIDs(ctx, id)
	if err != nil {
		t.Fatalf("RefereeIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != memory.RefereeIDSvoboda || ids[1] != memory.RefereeIDExternal {
		t.Fatalf("referee ids = %v, want [%d %d]", ids, memory.RefereeIDSvoboda, memory.RefereeIDExternal)
	}
}

func TestSetRefereesMissingMatch(t *testing.T) {
	f := newMatchFixture()

	err := f.svc.SetReferees(context.Background(), 42, []int64{memory.RefereeIDNovak})
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, match.ErrNotFound)
	}
}

func TestDeleteCascadesRefereeAssignments(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	id, err := f.svc.CreateWithReferees(ctx, validMatchInput(), []int64{memory.RefereeIDNovak, memory.RefereeIDSvoboda})
	if err != nil {
		t.Fatalf("CreateWithReferees: %v", err)
	}

	if err := f.svc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := f.svc.Get(ctx, id); !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want %v", err, match.ErrNotFound)
	}
	ids, err := f.svc.RefereeIDs(ctx, id)
	if err != nil {
		t.Fatalf("RefereeIDs after delete: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("referee ids after delete = %v, want none", ids)
	}

	if err := f.svc.Delete(ctx, id); !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("second delete = %v, want %v", err, match.ErrNotFound)
	}
}

func TestListWithNamesNewestFirst(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	early := validMatchInput()
	early.StartTime = time.Date(2026, 1, 13, 9, 0, 0, 0, time.UTC)
	late := validMatchInput()
	late.StartTime = time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)

	earlyID, err := f.svc.CreateWithReferees(ctx, early, []int64{memory.RefereeIDNovak})
	if err != nil {
		t.Fatalf("create early: %v", err)
	}
	lateID, err := f.svc.CreateWithReferees(ctx, late, []int64{memory.RefereeIDNovak})
	if err != nil {
		t.Fatalf("create late: %v", err)
	}

	summaries, err := f.svc.ListWithNames(ctx)
	if err != nil {
		t.Fatalf("ListWithNames: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}
	if summaries[0].MatchID != lateID || summaries[1].MatchID != earlyID {
		t.Fatalf("order = [%d %d], want [%d %d]", summaries[0].MatchID, summaries[1].MatchID, lateID, earlyID)
	}
	if summaries[0].HomeTeamName == nil || *summaries[0].HomeTeamName != "9.A Wolves" {
		t.Fatalf("home team name = %v, want 9.A Wolves", summaries[0].HomeTeamName)
	}
	if summaries[0].TournamentName == nil || *summaries[0].TournamentName != "Winter Indoor Cup" {
		t.Fatalf("tournament name = %v, want Winter Indoor Cup", summaries[0].TournamentName)
	}
}

func TestMatchInputValidation(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		input MatchInput
	}{
		{"missing tournament", MatchInput{HomeTeamID: 1, AwayTeamID: 2, StartTime: time.Now()}},
		{"missing teams", MatchInput{TournamentID: 1, StartTime: time.Now()}},
		{"missing start time", MatchInput{TournamentID: 1, HomeTeamID: 1, AwayTeamID: 2}},
		{"bad status", func() MatchInput {
			in := validMatchInput()
			in.Status = "paused"
			return in
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateWithReferees(ctx, tc.input, []int64{memory.RefereeIDNovak})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error = %v, want %v", err, ErrInvalidInput)
			}
		})
	}
}
