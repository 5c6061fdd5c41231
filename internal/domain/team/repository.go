package team

import "context"

// Repository exposes team persistence operations. Soft-deleted teams
// are excluded from reads unless includeDeleted is set.
type Repository interface {
	GetByID(ctx context.Context, id int64, includeDeleted bool) (Team, error)
	List(ctx context.Context, includeDeleted bool) ([]Team, error)
	Insert(ctx context.Context, t Team) (int64, error)
	Update(ctx context.Context, t Team) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}
