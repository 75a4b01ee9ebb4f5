package area

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/cagb07/gestor-centros-app/internal/domain/area"
	"github.com/cagb07/gestor-centros-app/internal/domain/uow"
)

type Usecase struct {
	uow  uow.UnitOfWork
	repo area.Repository
}

func NewUsecase(u uow.UnitOfWork, r area.Repository) *Usecase {
	return &Usecase{uow: u, repo: r}
}

type CreateAreaInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

func (u *Usecase) Create(ctx context.Context, in CreateAreaInput) (*area.Area, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > area.MaxNameLength {
		return nil, area.ErrInvalidName
	}
	out := &area.Area{AreaName: name, Description: strings.TrimSpace(in.Description)}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.Areas.GetByName(ctx, name)
		if err == nil {
			return area.ErrDuplicateName
		}
		if !errors.Is(err, area.ErrNotFound) {
			return err
		}
		return r.Areas.Create(ctx, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) List(ctx context.Context) ([]area.Area, error) {
	return u.repo.List(ctx)
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*area.Area, error) {
	return u.repo.GetByID(ctx, id)
}

type UpdateAreaInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateAreaInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > area.MaxNameLength {
		return area.ErrInvalidName
	}
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cur, err := r.Areas.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if name != cur.AreaName {
			if _, err := r.Areas.GetByName(ctx, name); err == nil {
				return area.ErrDuplicateName
			} else if !errors.Is(err, area.ErrNotFound) {
				return err
			}
		}
		cur.AreaName = name
		cur.Description = strings.TrimSpace(in.Description)
		return r.Areas.Update(ctx, cur)
	})
}

// Delete refuses to orphan templates: an area that still owns templates
// cannot be removed.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Areas.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := r.Templates.CountByArea(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return area.ErrInUse
		}
		return r.Areas.Delete(ctx, id)
	})
}
