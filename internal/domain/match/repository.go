package match

import "context"

// Repository owns the match lifecycle and the match<->referee
// association rows.
//
// CreateWithReferees and SetReferees run as single transactions:
// either every row lands or none does. SetReferees is a full replace,
// not a diff; concurrent replaces for the same match race
// last-write-wins at commit. Delete removes the association rows and
// the match row in one transaction so no orphans survive.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Match, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Match, error)
	Insert(ctx context.Context, m Match) (int64, error)
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id int64) error

	CreateWithReferees(ctx context.Context, m Match, refereeIDs []int64) (int64, error)
	SetReferees(ctx context.Context, matchID int64, refereeIDs []int64) error
	RefereeIDs(ctx context.Context, matchID int64) ([]int64, error)

	ListWithNames(ctx context.Context) ([]Summary, error)
}
