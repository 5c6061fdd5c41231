package player

import "context"

// Repository exposes player persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Player, error)
	ListAll(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Player, error)
	Insert(ctx context.Context, p Player) (int64, error)
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id int64) error
}
