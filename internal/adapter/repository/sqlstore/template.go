package sqlstore

import (
	"context"
	"errors"

	templateDomain "github.com/cagb07/gestor-centros-app/internal/domain/template"

	"gorm.io/gorm"
)

type TemplateRepository struct{ db *gorm.DB }

func NewTemplateRepository(db *gorm.DB) *TemplateRepository { return &TemplateRepository{db: db} }

func (r *TemplateRepository) Create(ctx context.Context, t *templateDomain.Template) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uint64) (*templateDomain.Template, error) {
	var out templateDomain.Template
	err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, templateDomain.ErrNotFound
	}
	return &out, err
}

func (r *TemplateRepository) ListByArea(ctx context.Context, areaID uint64) ([]templateDomain.Summary, error) {
	var out []templateDomain.Summary
	err := r.db.WithContext(ctx).
		Model(&templateDomain.Template{}).
		Select("id, name").
		Where("area_id = ?", areaID).
		Order("name").
		Scan(&out).Error
	return out, err
}

func (r *TemplateRepository) CountByArea(ctx context.Context, areaID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&templateDomain.Template{}).
		Where("area_id = ?", areaID).
		Count(&n).Error
	return n, err
}

func (r *TemplateRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&templateDomain.Template{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return templateDomain.ErrNotFound
	}
	return nil
}
