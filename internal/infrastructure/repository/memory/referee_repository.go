package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/referee"
)

type RefereeRepository struct {
	mu     sync.RWMutex
	items  map[int64]referee.Referee
	nextID int64
}

func NewRefereeRepository(seed []referee.Referee) *RefereeRepository {
	r := &RefereeRepository{
		items:  make(map[int64]referee.Referee, len(seed)),
		nextID: 1,
	}
	for _, ref := range seed {
		if ref.ID == 0 {
			ref.ID = r.nextID
		}
		r.items[ref.ID] = ref
		if ref.ID >= r.nextID {
			r.nextID = ref.ID + 1
		}
	}
	return r
}

func (r *RefereeRepository) GetByID(_ context.Context, id int64) (referee.Referee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.items[id]
	if !ok {
		return referee.Referee{}, referee.ErrNotFound
	}
	return ref, nil
}

func (r *RefereeRepository) List(_ context.Context, activeOnly bool) ([]referee.Referee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]referee.Referee, 0, len(r.items))
	for _, ref := range r.items {
		if activeOnly && !ref.Active {
			continue
		}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FullName < out[j].FullName
	})
	return out, nil
}

func (r *RefereeRepository) Insert(_ context.Context, ref referee.Referee) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ref.ID = r.nextID
	r.nextID++
	r.items[ref.ID] = ref
	return ref.ID, nil
}

func (r *RefereeRepository) Update(_ context.Context, ref referee.Referee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[ref.ID]; !ok {
		return referee.ErrNotFound
	}
	r.items[ref.ID] = ref
	return nil
}

func (r *RefereeRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return referee.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *RefereeRepository) exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok
}
