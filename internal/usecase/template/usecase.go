package template

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/cagb07/gestor-centros-app/internal/domain/template"
	"github.com/cagb07/gestor-centros-app/internal/domain/uow"
	"github.com/cagb07/gestor-centros-app/internal/formengine"

	"gorm.io/datatypes"
)

type Usecase struct {
	uow  uow.UnitOfWork
	repo template.Repository
}

func NewUsecase(u uow.UnitOfWork, r template.Repository) *Usecase {
	return &Usecase{uow: u, repo: r}
}

type SaveTemplateInput struct {
	Name   string                `json:"name" validate:"required,max=100"`
	Fields []formengine.FieldSpec `json:"fields" validate:"required,min=1,dive"`
	AreaID uint64                `json:"area_id" validate:"required"`
}

type TemplateDTO struct {
	ID     uint64                 `json:"id"`
	Name   string                 `json:"name"`
	AreaID uint64                 `json:"area_id"`
	Fields []formengine.FieldSpec `json:"fields"`
}

// Save validates the definition and persists the whole field list as one
// ordered JSON blob. Validation fails fast on the first bad field.
func (u *Usecase) Save(ctx context.Context, in SaveTemplateInput, authorID uint64) (*TemplateDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || utf8.RuneCountInString(name) > template.MaxNameLength {
		return nil, template.ErrInvalidName
	}
	fields := make([]formengine.FieldSpec, 0, len(in.Fields))
	for _, f := range in.Fields {
		f.Label = strings.TrimSpace(f.Label)
		fields = append(fields, f)
	}
	if specErr := formengine.ValidateSpecs(fields); specErr != nil {
		return nil, specErr
	}
	structure, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	t := &template.Template{
		Name:            name,
		Structure:       datatypes.JSON(structure),
		CreatedByUserID: authorID,
		AreaID:          in.AreaID,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Areas.GetByID(ctx, in.AreaID); err != nil {
			return err
		}
		return r.Templates.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return &TemplateDTO{ID: t.ID, Name: t.Name, AreaID: t.AreaID, Fields: fields}, nil
}

func (u *Usecase) ListByArea(ctx context.Context, areaID uint64) ([]template.Summary, error) {
	return u.repo.ListByArea(ctx, areaID)
}

// GetFields decodes a template's stored structure back into its ordered
// field list.
func (u *Usecase) GetFields(ctx context.Context, id uint64) ([]formengine.FieldSpec, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var fields []formengine.FieldSpec
	if err := json.Unmarshal(t.Structure, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*template.Template, error) {
	return u.repo.GetByID(ctx, id)
}

// Delete refuses to orphan submissions.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Templates.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := r.Submissions.CountByTemplate(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return template.ErrInUse
		}
		return r.Templates.Delete(ctx, id)
	})
}

// RenderForm builds the initial capture shape for a template, applying
// any prefill values, and returns it alongside the field list.
func (u *Usecase) RenderForm(ctx context.Context, id uint64, prefill map[string]formengine.Value) ([]formengine.FieldSpec, formengine.Capture, error) {
	fields, err := u.GetFields(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return fields, formengine.Render(fields, prefill), nil
}
