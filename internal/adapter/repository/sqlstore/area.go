package sqlstore

import (
	"context"
	"errors"

	areaDomain "github.com/cagb07/gestor-centros-app/internal/domain/area"

	"gorm.io/gorm"
)

type AreaRepository struct{ db *gorm.DB }

func NewAreaRepository(db *gorm.DB) *AreaRepository { return &AreaRepository{db: db} }

func (r *AreaRepository) Create(ctx context.Context, a *areaDomain.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AreaRepository) GetByID(ctx context.Context, id uint64) (*areaDomain.Area, error) {
	var out areaDomain.Area
	err := r.db.WithContext(ctx).First(&out, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, areaDomain.ErrNotFound
	}
	return &out, err
}

func (r *AreaRepository) GetByName(ctx context.Context, name string) (*areaDomain.Area, error) {
	var out areaDomain.Area
	err := r.db.WithContext(ctx).First(&out, "area_name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, areaDomain.ErrNotFound
	}
	return &out, err
}

func (r *AreaRepository) List(ctx context.Context) ([]areaDomain.Area, error) {
	var out []areaDomain.Area
	err := r.db.WithContext(ctx).Order("area_name").Find(&out).Error
	return out, err
}

func (r *AreaRepository) Update(ctx context.Context, a *areaDomain.Area) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AreaRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&areaDomain.Area{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return areaDomain.ErrNotFound
	}
	return nil
}

func (r *AreaRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&areaDomain.Area{}).Count(&n).Error
	return n, err
}
