package areamock

import (
	"context"

	domain "github.com/cagb07/gestor-centros-app/internal/domain/area"
)

// Repo is a function-backed mock that satisfies area.Repository. Only
// the methods a test configures do anything useful.
type Repo struct {
	CreateFn    func(ctx context.Context, a *domain.Area) error
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Area, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Area, error)
	ListFn      func(ctx context.Context) ([]domain.Area, error)
	UpdateFn    func(ctx context.Context, a *domain.Area) error
	DeleteFn    func(ctx context.Context, id uint64) error
	CountFn     func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Area) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Area, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Area, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Area, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Update(ctx context.Context, a *domain.Area) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
