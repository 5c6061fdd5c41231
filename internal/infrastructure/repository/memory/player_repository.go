package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	nextID int64
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	r := &PlayerRepository{
		items:  make(map[int64]player.Player, len(seed)),
		nextID: 1,
	}
	for _, p := range seed {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		r.items[p.ID] = p
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return player.Player{}, player.ErrNotFound
	}
	return p, nil
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	return r.list(func(player.Player) bool { return true }), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID int64) ([]player.Player, error) {
	return r.list(func(p player.Player) bool { return p.TeamID == teamID }), nil
}

func (r *PlayerRepository) list(keep func(player.Player) bool) []player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out
}

func (r *PlayerRepository) Insert(_ context.Context, p player.Player) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = p
	return p.ID, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[p.ID]; !ok {
		return player.ErrNotFound
	}
	r.items[p.ID] = p
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return player.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
