package sqlstore

import (
	"context"
	"errors"
	"time"

	subDomain "github.com/cagb07/gestor-centros-app/internal/domain/submission"

	"gorm.io/gorm"
)

type SubmissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *subDomain.Submission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uint64) (*subDomain.Submission, error) {
	var out subDomain.Submission
	err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, subDomain.ErrNotFound
	}
	return &out, err
}

func (r *SubmissionRepository) ListByUser(ctx context.Context, userID uint64) ([]subDomain.OwnItem, error) {
	var out []subDomain.OwnItem
	err := r.db.WithContext(ctx).
		Table("form_submissions AS s").
		Select("s.id, t.name AS template_name, s.created_at, s.data").
		Joins("JOIN form_templates t ON s.template_id = t.id").
		Where("s.user_id = ?", userID).
		Order("s.created_at DESC, s.id DESC").
		Scan(&out).Error
	return out, err
}

func (r *SubmissionRepository) ListDetails(ctx context.Context, onlyUnreviewed bool) ([]subDomain.Detail, error) {
	q := r.db.WithContext(ctx).
		Table("form_submissions AS s").
		Select("s.id, u.full_name AS user_name, t.name AS template_name, a.area_name, " +
			"s.data, s.created_at, s.reviewed, s.reviewed_at, ru.full_name AS reviewed_by_name").
		Joins("JOIN usuarios u ON s.user_id = u.id").
		Joins("JOIN form_templates t ON s.template_id = t.id").
		Joins("JOIN form_areas a ON t.area_id = a.id").
		Joins("LEFT JOIN usuarios ru ON s.reviewed_by = ru.id").
		Order("s.created_at DESC, s.id DESC")
	if onlyUnreviewed {
		q = q.Where("s.reviewed = ?", false)
	}
	var out []subDomain.Detail
	err := q.Scan(&out).Error
	return out, err
}

// SetReviewed must stay idempotent: a no-op update reports zero changed
// rows on MySQL, so existence is the caller's check, not RowsAffected.
func (r *SubmissionRepository) SetReviewed(ctx context.Context, id uint64, reviewedBy *uint64, reviewedAt *time.Time, reviewed bool) error {
	return r.db.WithContext(ctx).
		Model(&subDomain.Submission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reviewed":    reviewed,
			"reviewed_by": reviewedBy,
			"reviewed_at": reviewedAt,
		}).Error
}

func (r *SubmissionRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&subDomain.Submission{}).Count(&n).Error
	return n, err
}

func (r *SubmissionRepository) CountByArea(ctx context.Context) ([]subDomain.AreaCount, error) {
	var out []subDomain.AreaCount
	err := r.db.WithContext(ctx).
		Table("form_submissions AS s").
		Select("a.area_name, COUNT(s.id) AS count").
		Joins("JOIN form_templates t ON s.template_id = t.id").
		Joins("JOIN form_areas a ON t.area_id = a.id").
		Group("a.area_name").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *SubmissionRepository) CountByUser(ctx context.Context) ([]subDomain.UserCount, error) {
	var out []subDomain.UserCount
	err := r.db.WithContext(ctx).
		Table("form_submissions AS s").
		Select("u.full_name AS user_name, COUNT(s.id) AS count").
		Joins("JOIN usuarios u ON s.user_id = u.id").
		Group("u.full_name").
		Order("count DESC").
		Scan(&out).Error
	return out, err
}

func (r *SubmissionRepository) CountByTemplate(ctx context.Context, templateID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&subDomain.Submission{}).
		Where("template_id = ?", templateID).
		Count(&n).Error
	return n, err
}
