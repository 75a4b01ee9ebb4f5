package area

import "context"

type Repository interface {
	Create(ctx context.Context, a *Area) error
	GetByID(ctx context.Context, id uint64) (*Area, error)
	GetByName(ctx context.Context, name string) (*Area, error)
	// List returns every area ordered by name.
	List(ctx context.Context) ([]Area, error)
	Update(ctx context.Context, a *Area) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}
