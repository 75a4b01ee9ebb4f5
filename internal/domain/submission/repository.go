package submission

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s *Submission) error
	GetByID(ctx context.Context, id uint64) (*Submission, error)
	// ListByUser returns one user's submissions, most recent first.
	ListByUser(ctx context.Context, userID uint64) ([]OwnItem, error)
	// ListDetails returns every submission joined with author, template,
	// area and reviewer names, most recent first.
	ListDetails(ctx context.Context, onlyUnreviewed bool) ([]Detail, error)
	// SetReviewed stamps or clears the review triple.
	SetReviewed(ctx context.Context, id uint64, reviewedBy *uint64, reviewedAt *time.Time, reviewed bool) error
	CountAll(ctx context.Context) (int64, error)
	CountByArea(ctx context.Context) ([]AreaCount, error)
	CountByUser(ctx context.Context) ([]UserCount, error)
	CountByTemplate(ctx context.Context, templateID uint64) (int64, error)
}
