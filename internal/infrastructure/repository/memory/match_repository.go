package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/school-tournament/internal/domain/match"
)

// MatchRepository keeps matches and their referee association rows
// under one mutex, mirroring the transactional postgres behavior:
// multi-step operations either complete under the lock or leave the
// maps untouched.
type MatchRepository struct {
	mu       sync.Mutex
	items    map[int64]match.Match
	referees map[int64][]int64
	nextID   int64

	tournaments *TournamentRepository
	teams       *TeamRepository
	refereeRepo *RefereeRepository
}

func NewMatchRepository(tournaments *TournamentRepository, teams *TeamRepository, referees *RefereeRepository) *MatchRepository {
	return &MatchRepository{
		items:       make(map[int64]match.Match),
		referees:    make(map[int64][]int64),
		nextID:      1,
		tournaments: tournaments,
		teams:       teams,
		refereeRepo: referees,
	}
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return m, nil
}

func (r *MatchRepository) ListByTournament(_ context.Context, tournamentID int64) ([]match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.After(out[j].StartTime)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) Insert(_ context.Context, m match.Match) (int64, error) {
	if m.HomeTeamID == m.AwayTeamID {
		return 0, match.ErrSameTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(m), nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	if m.HomeTeamID == m.AwayTeamID {
		return match.ErrSameTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.ID]; !ok {
		return match.ErrNotFound
	}
	r.items[m.ID] = m
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return match.ErrNotFound
	}
	delete(r.referees, id)
	delete(r.items, id)
	return nil
}

func (r *MatchRepository) CreateWithReferees(_ context.Context, m match.Match, refereeIDs []int64) (int64, error) {
	if len(refereeIDs) == 0 {
		return 0, match.ErrNoReferees
	}
	if m.HomeTeamID == m.AwayTeamID {
		return 0, match.ErrSameTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.insertLocked(m)
	if err := r.assignLocked(id, refereeIDs); err != nil {
		// rollback: the partially created match must not survive
		delete(r.referees, id)
		delete(r.items, id)
		return 0, err
	}
	return id, nil
}

func (r *MatchRepository) SetReferees(_ context.Context, matchID int64, refereeIDs []int64) error {
	if len(refereeIDs) == 0 {
		return match.ErrNoReferees
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[matchID]; !ok {
		return match.ErrNotFound
	}

	previous := r.referees[matchID]
	delete(r.referees, matchID)
	if err := r.assignLocked(matchID, refereeIDs); err != nil {
		r.referees[matchID] = previous
		return err
	}
	return nil
}

func (r *MatchRepository) RefereeIDs(_ context.Context, matchID int64) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := append([]int64(nil), r.referees[matchID]...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *MatchRepository) ListWithNames(_ context.Context) ([]match.Summary, error) {
	r.mu.Lock()
	matches := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		matches = append(matches, m)
	}
	r.mu.Unlock()

	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].StartTime.Equal(matches[j].StartTime) {
			return matches[i].StartTime.After(matches[j].StartTime)
		}
		return matches[i].ID > matches[j].ID
	})
	if len(matches) > 200 {
		matches = matches[:200]
	}

	out := make([]match.Summary, 0, len(matches))
	for _, m := range matches {
		out = append(out, match.Summary{
			MatchID:        m.ID,
			TournamentName: r.tournaments.nameByID(m.TournamentID),
			HomeTeamName:   r.teams.nameByID(m.HomeTeamID),
			AwayTeamName:   r.teams.nameByID(m.AwayTeamID),
			StartTime:      m.StartTime,
			Status:         m.Status,
			IsOvertime:     m.IsOvertime,
		})
	}
	return out, nil
}

func (r *MatchRepository) insertLocked(m match.Match) int64 {
	m.ID = r.nextID
	r.nextID++
	r.items[m.ID] = m
	return m.ID
}

func (r *MatchRepository) assignLocked(matchID int64, refereeIDs []int64) error {
	seen := make(map[int64]struct{}, len(refereeIDs))
	for _, refereeID := range refereeIDs {
		if r.refereeRepo != nil && !r.refereeRepo.exists(refereeID) {
			return fmt.Errorf("assign referee %d to match %d: referee does not exist", refereeID, matchID)
		}
		if _, dup := seen[refereeID]; dup {
			return fmt.Errorf("assign referee %d to match %d: duplicate assignment", refereeID, matchID)
		}
		seen[refereeID] = struct{}{}
		r.referees[matchID] = append(r.referees[matchID], refereeID)
	}
	return nil
}
