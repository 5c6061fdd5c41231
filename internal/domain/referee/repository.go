package referee

import "context"

// Repository exposes referee persistence operations.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Referee, error)
	List(ctx context.Context, activeOnly bool) ([]Referee, error)
	Insert(ctx context.Context, r Referee) (int64, error)
	Update(ctx context.Context, r Referee) error
	Delete(ctx context.Context, id int64) error
}
