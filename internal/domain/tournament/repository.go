package tournament

import "context"

// Repository exposes tournament persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Tournament, error)
	List(ctx context.Context) ([]Tournament, error)
	Insert(ctx context.Context, t Tournament) (int64, error)
	Update(ctx context.Context, t Tournament) error
	Delete(ctx context.Context, id int64) error
}
