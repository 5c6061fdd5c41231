package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
	"github.com/riskibarqy/school-tournament/internal/domain/matchevent"
)

type storedEvent struct {
	event matchevent.Event
	seq   int64 // insertion order, breaks created_at ties
}

// MatchEventRepository shares the match repository's mutex for
// AddGoal, which gives the same serialization the postgres FOR UPDATE
// row lock provides: status check, event insert and status transition
// happen as one critical section.
type MatchEventRepository struct {
	mu      sync.Mutex
	items   map[int64]storedEvent
	nextID  int64
	nextSeq int64

	matches *MatchRepository
	now     func() time.Time
}

func NewMatchEventRepository(matches *MatchRepository) *MatchEventRepository {
	return &MatchEventRepository{
		items:   make(map[int64]storedEvent),
		nextID:  1,
		matches: matches,
		now:     time.Now,
	}
}

// SetClock overrides the event timestamp source; tests pin it.
func (r *MatchEventRepository) SetClock(now func() time.Time) {
	r.now = now
}

func (r *MatchEventRepository) GetByID(_ context.Context, id int64) (matchevent.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[id]
	if !ok {
		return matchevent.Event{}, matchevent.ErrNotFound
	}
	return s.event, nil
}

func (r *MatchEventRepository) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]storedEvent, 0, len(r.items))
	for _, s := range r.items {
		if s.event.MatchID == matchID {
			stored = append(stored, s)
		}
	}
	sort.Slice(stored, func(i, j int) bool {
		a, b := stored[i], stored[j]
		if a.event.Minute != b.event.Minute {
			return a.event.Minute < b.event.Minute
		}
		if !a.event.CreatedAt.Equal(b.event.CreatedAt) {
			return a.event.CreatedAt.Before(b.event.CreatedAt)
		}
		return a.seq < b.seq
	})

	out := make([]matchevent.Event, 0, len(stored))
	for _, s := range stored {
		out = append(out, s.event)
	}
	return out, nil
}

func (r *MatchEventRepository) Insert(_ context.Context, e matchevent.Event) (int64, error) {
	if !matchevent.MinuteInRange(e.Minute) {
		return 0, matchevent.ErrMinuteOutOfRange
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(e), nil
}

func (r *MatchEventRepository) Update(_ context.Context, e matchevent.Event) error {
	if !matchevent.MinuteInRange(e.Minute) {
		return matchevent.ErrMinuteOutOfRange
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.items[e.ID]
	if !ok {
		return matchevent.ErrNotFound
	}
	s.event = e
	r.items[e.ID] = s
	return nil
}

func (r *MatchEventRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return matchevent.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *MatchEventRepository) AddGoal(_ context.Context, params matchevent.AddGoalParams) (int64, error) {
	if !matchevent.MinuteInRange(params.Minute) {
		return 0, matchevent.ErrMinuteOutOfRange
	}

	// Match lock first, then the event lock; same order everywhere.
	r.matches.mu.Lock()
	defer r.matches.mu.Unlock()

	m, ok := r.matches.items[params.MatchID]
	if !ok {
		return 0, match.ErrNotFound
	}
	if m.Status.Terminal() {
		return 0, match.ErrClosed
	}

	r.mu.Lock()
	id := r.insertLocked(matchevent.Event{
		MatchID:   params.MatchID,
		PlayerID:  params.PlayerID,
		TeamID:    params.TeamID,
		Minute:    params.Minute,
		Type:      matchevent.TypeGoal,
		XG:        params.XG,
		CreatedAt: r.now().UTC(),
	})
	r.mu.Unlock()

	if m.Status == match.StatusScheduled {
		m.Status = match.StatusLive
		r.matches.items[params.MatchID] = m
	}
	return id, nil
}

func (r *MatchEventRepository) insertLocked(e matchevent.Event) int64 {
	e.ID = r.nextID
	r.nextID++
	if e.CreatedAt.IsZero() {
		e.CreatedAt = r.now().UTC()
	}
	r.items[e.ID] = storedEvent{event: e, seq: r.nextSeq}
	r.nextSeq++
	return e.ID
}
