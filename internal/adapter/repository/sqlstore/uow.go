package sqlstore

import (
	"context"

	"github.com/cagb07/gestor-centros-app/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Areas:       &AreaRepository{db: tx},
			Users:       &UserRepository{db: tx},
			Templates:   &TemplateRepository{db: tx},
			Submissions: &SubmissionRepository{db: tx},
		}
		return fn(r)
	})
}
