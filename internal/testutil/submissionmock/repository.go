package submissionmock

import (
	"context"
	"time"

	domain "github.com/cagb07/gestor-centros-app/internal/domain/submission"
)

// Repo is a function-backed mock that satisfies submission.Repository.
type Repo struct {
	CreateFn          func(ctx context.Context, s *domain.Submission) error
	GetByIDFn         func(ctx context.Context, id uint64) (*domain.Submission, error)
	ListByUserFn      func(ctx context.Context, userID uint64) ([]domain.OwnItem, error)
	ListDetailsFn     func(ctx context.Context, onlyUnreviewed bool) ([]domain.Detail, error)
	SetReviewedFn     func(ctx context.Context, id uint64, reviewedBy *uint64, reviewedAt *time.Time, reviewed bool) error
	CountAllFn        func(ctx context.Context) (int64, error)
	CountByAreaFn     func(ctx context.Context) ([]domain.AreaCount, error)
	CountByUserFn     func(ctx context.Context) ([]domain.UserCount, error)
	CountByTemplateFn func(ctx context.Context, templateID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Submission) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Submission, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.OwnItem, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListDetails(ctx context.Context, onlyUnreviewed bool) ([]domain.Detail, error) {
	if m.ListDetailsFn != nil {
		return m.ListDetailsFn(ctx, onlyUnreviewed)
	}
	return nil, nil
}

func (m *Repo) SetReviewed(ctx context.Context, id uint64, reviewedBy *uint64, reviewedAt *time.Time, reviewed bool) error {
	if m.SetReviewedFn != nil {
		return m.SetReviewedFn(ctx, id, reviewedBy, reviewedAt, reviewed)
	}
	return nil
}

func (m *Repo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFn != nil {
		return m.CountAllFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByArea(ctx context.Context) ([]domain.AreaCount, error) {
	if m.CountByAreaFn != nil {
		return m.CountByAreaFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByUser(ctx context.Context) ([]domain.UserCount, error) {
	if m.CountByUserFn != nil {
		return m.CountByUserFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CountByTemplate(ctx context.Context, templateID uint64) (int64, error) {
	if m.CountByTemplateFn != nil {
		return m.CountByTemplateFn(ctx, templateID)
	}
	return 0, nil
}
