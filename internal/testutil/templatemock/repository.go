package templatemock

import (
	"context"

	domain "github.com/cagb07/gestor-centros-app/internal/domain/template"
)

// Repo is a function-backed mock that satisfies template.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, t *domain.Template) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.Template, error)
	ListByAreaFn  func(ctx context.Context, areaID uint64) ([]domain.Summary, error)
	CountByAreaFn func(ctx context.Context, areaID uint64) (int64, error)
	DeleteFn      func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, t *domain.Template) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Template, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByArea(ctx context.Context, areaID uint64) ([]domain.Summary, error) {
	if m.ListByAreaFn != nil {
		return m.ListByAreaFn(ctx, areaID)
	}
	return nil, nil
}

func (m *Repo) CountByArea(ctx context.Context, areaID uint64) (int64, error) {
	if m.CountByAreaFn != nil {
		return m.CountByAreaFn(ctx, areaID)
	}
	return 0, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
