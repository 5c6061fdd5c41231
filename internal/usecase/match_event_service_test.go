package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/matchevent"
	"github.com/riskibarqy/school-tournament/internal/infrastructure/repository/memory"
)

func (f *matchFixture) createMatch(t *testing.T) int64 {
	t.Helper()
	id, err := f.svc.CreateWithReferees(context.Background(), validMatchInput(), []int64{memory.RefereeIDNovak})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return id
}

func TestAddGoalStartsScheduledMatch(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()
	matchID := f.createMatch(t)

	eventID, err := f.eventsvc.AddGoal(ctx, AddGoalInput{
		MatchID: matchID,
		TeamID:  memory.TeamID9A,
		Minute:  12,
	})
	if err != nil {
		t.Fatalf("AddGoal: %v", err)
	}

	m, err := f.svc.Get(ctx, matchID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m.Status != match.StatusLive {
		t.Fatalf("status after first goal = %q, want %q", m.Status, match.StatusLive)
	}

	e, err := f.eventsvc.Get(ctx, eventID)
	if err != nil {
		t.Fatalf("Get event: %v", err)
	}
	if e.Type != matchevent.TypeGoal || e.Minute != 12 {
		t.Fatalf("event = %+v, want goal at minute 12", e)
	}
	if e.CreatedAt.Location() != time.UTC {
		t.Fatalf("created_at location = %v, want UTC", e.CreatedAt.Location())
	}
}

func TestAddGoalLeavesLiveMatchLive(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()
	matchID := f.createMatch(t)

	for minute := 5; minute <= 15; minute += 5 {
		if _, err := f.eventsvc.AddGoal(ctx, AddGoalInput{MatchID: matchID, TeamID: memory.TeamID9B, Minute: minute}); err != nil {
			t.Fatalf("AddGoal minute %d: %v", minute, err)
		}
	}

	m, err := f.svc.Get(ctx, matchID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m.Status != match.StatusLive {
		t.Fatalf("status = %q, want %q", m.Status, match.StatusLive)
	}
}

func TestAddGoalRejectsTerminalMatch(t *testing.T) {
	for _, status := range []match.Status{match.StatusFinished, match.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newMatchFixture()
			ctx := context.Background()
			matchID := f.createMatch(t)

			input := validMatchInput()
			input.Status = status
			if err := f.svc.Update(ctx, matchID, input); err != nil {
				t.Fatalf("Update to %s: %v", status, err)
			}

			_, err := f.eventsvc.AddGoal(ctx, AddGoalInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: 40})
			if !errors.Is(err, match.ErrClosed) {
				t.Fatalf("error = %v, want %v", err, match.ErrClosed)
			}

			timeline, err := f.eventsvc.Timeline(ctx, matchID)
			if err != nil {
				t.Fatalf("Timeline: %v", err)
			}
			if len(timeline) != 0 {
				t.Fatalf("events on closed match = %d, want 0", len(timeline))
			}
		})
	}
}

func TestAddGoalMissingMatch(t *testing.T) {
	f := newMatchFixture()

	_, err := f.eventsvc.AddGoal(context.Background(), AddGoalInput{MatchID: 42, TeamID: memory.TeamID9A, Minute: 10})
	if !errors.Is(err, match.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, match.ErrNotFound)
	}
}

func TestAddGoalMinuteRange(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()
	matchID := f.createMatch(t)

	for _, minute := range []int{-1, 201} {
		_, err := f.eventsvc.AddGoal(ctx, AddGoalInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: minute})
		if !errors.Is(err, matchevent.ErrMinuteOutOfRange) {
			t.Fatalf("minute %d error = %v, want %v", minute, err, matchevent.ErrMinuteOutOfRange)
		}
	}

	// the rejected minutes must not have touched the status machine
	m, err := f.svc.Get(ctx, matchID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m.Status != match.StatusScheduled {
		t.Fatalf("status = %q, want %q", m.Status, match.StatusScheduled)
	}

	for _, minute := range []int{0, 200} {
		if _, err := f.eventsvc.AddGoal(ctx, AddGoalInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: minute}); err != nil {
			t.Fatalf("minute %d: %v", minute, err)
		}
	}
}

func TestTimelineOrderedByMinuteThenCreation(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()
	matchID := f.createMatch(t)

	clock := time.Date(2026, 1, 14, 14, 0, 0, 0, time.UTC)
	f.events.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	// insertion order 10, 5, 5: listing must come back 5 (older), 5, 10
	for _, minute := range []int{10, 5, 5} {
		if _, err := f.eventsvc.AddGoal(ctx, AddGoalInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: minute}); err != nil {
			t.Fatalf("AddGoal minute %d: %v", minute, err)
		}
	}

	timeline, err := f.eventsvc.Timeline(ctx, matchID)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(timeline) != 3 {
		t.Fatalf("timeline length = %d, want 3", len(timeline))
	}
	minutes := []int{timeline[0].Minute, timeline[1].Minute, timeline[2].Minute}
	if minutes[0] != 5 || minutes[1] != 5 || minutes[2] != 10 {
		t.Fatalf("minutes = %v, want [5 5 10]", minutes)
	}
	if timeline[0].CreatedAt.After(timeline[1].CreatedAt) {
		t.Fatalf("tied minutes out of creation order: %v then %v", timeline[0].CreatedAt, timeline[1].CreatedAt)
	}
}

func TestConcurrentGoalsSerialize(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()
	matchID := f.createMatch(t)

	const goals = 8
	var wg sync.WaitGroup
	errs := make([]error, goals)
	for i := 0; i < goals; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.eventsvc.AddGoal(ctx, AddGoalInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: 10 + i})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goal %d: %v", i, err)
		}
	}

	m, err := f.svc.Get(ctx, matchID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m.Status != match.StatusLive {
		t.Fatalf("status = %q, want %q", m.Status, match.StatusLive)
	}

	timeline, err := f.eventsvc.Timeline(ctx, matchID)
	if err != nil {
		t.Fatalf("Timeline: %v", err)
	}
	if len(timeline) != goals {
		t.Fatalf("timeline length = %d, want %d", len(timeline), goals)
	}
}

func TestRecordEventValidation(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()
	matchID := f.createMatch(t)

	if _, err := f.eventsvc.RecordEvent(ctx, RecordEventInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: 30, Type: "corner"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown type error = %v, want %v", err, ErrInvalidInput)
	}

	id, err := f.eventsvc.RecordEvent(ctx, RecordEventInput{MatchID: matchID, TeamID: memory.TeamID9A, Minute: 30, Type: matchevent.TypeYellow})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	e, err := f.eventsvc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get event: %v", err)
	}
	if e.Type != matchevent.TypeYellow {
		t.Fatalf("type = %q, want %q", e.Type, matchevent.TypeYellow)
	}

	// cards attach without driving the status machine
	m, err := f.svc.Get(ctx, matchID)
	if err != nil {
		t.Fatalf("Get match: %v", err)
	}
	if m.Status != match.StatusScheduled {
		t.Fatalf("status after card = %q, want %q", m.Status, match.StatusScheduled)
	}
}
