package template

import "context"

type Repository interface {
	Create(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id uint64) (*Template, error)
	// ListByArea returns the templates of one area ordered by name.
	ListByArea(ctx context.Context, areaID uint64) ([]Summary, error)
	CountByArea(ctx context.Context, areaID uint64) (int64, error)
	Delete(ctx context.Context, id uint64) error
}
