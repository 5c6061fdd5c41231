package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[int64]tournament.Tournament
	nextID int64
}

func NewTournamentRepository(seed []tournament.Tournament) *TournamentRepository {
	r := &TournamentRepository{
		items:  make(map[int64]tournament.Tournament, len(seed)),
		nextID: 1,
	}
	for _, t := range seed {
		if t.ID == 0 {
			t.ID = r.nextID
		}
		r.items[t.ID] = t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *TournamentRepository) GetByID(_ context.Context, id int64) (tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return tournament.Tournament{}, tournament.ErrNotFound
	}
	return t, nil
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *TournamentRepository) Insert(_ context.Context, t tournament.Tournament) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.items[t.ID] = t
	return t.ID, nil
}

func (r *TournamentRepository) Update(_ context.Context, t tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; !ok {
		return tournament.ErrNotFound
	}
	r.items[t.ID] = t
	return nil
}

// nameByID resolves a tournament name for the match summary join;
// nil when the tournament is gone, matching the LEFT JOIN behavior.
func (r *TournamentRepository) nameByID(id int64) *string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil
	}
	name := t.Name
	return &name
}

func (r *TournamentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return tournament.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
