package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	items  map[int64]team.Team
	nextID int64
}

func NewTeamRepository(seed []team.Team) *TeamRepository {
	r := &TeamRepository{
		items:  make(map[int64]team.Team, len(seed)),
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

func (r *TeamRepository) GetByID(_ context.Context, id int64, includeDeleted bool) (team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok || (t.IsDeleted && !includeDeleted) {
		return team.Team{}, team.ErrNotFound
	}
	return t, nil
}

func (r *TeamRepository) List(_ context.Context, includeDeleted bool) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.items))
	for _, t := range r.items {
		if t.IsDeleted && !includeDeleted {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClassName != out[j].ClassName {
			return out[i].ClassName < out[j].ClassName
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *TeamRepository) Insert(_ context.Context, t team.Team) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = r.nextID
	r.nextID++
	r.items[t.ID] = t
	return t.ID, nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[t.ID]; !ok {
		return team.ErrNotFound
	}
	r.items[t.ID] = t
	return nil
}

func (r *TeamRepository) SoftDelete(_ context.Context, id int64) error {
	return r.setDeleted(id, true)
}

func (r *TeamRepository) Restore(_ context.Context, id int64) error {
	return r.setDeleted(id, false)
}

func (r *TeamRepository) setDeleted(id int64, deleted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return team.ErrNotFound
	}
	t.IsDeleted = deleted
	r.items[id] = t
	return nil
}

// nameByID resolves a team name for the match summary join; nil when
// the team is gone, matching the LEFT JOIN behavior.
func (r *TeamRepository) nameByID(id int64) *string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return nil
	}
	name := t.Name
	return &name
}
