package submission

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cagb07/gestor-centros-app/internal/domain/submission"
	"github.com/cagb07/gestor-centros-app/internal/domain/uow"
	"github.com/cagb07/gestor-centros-app/internal/formengine"

	"gorm.io/datatypes"
)

type Usecase struct {
	uow  uow.UnitOfWork
	repo submission.Repository
}

func NewUsecase(u uow.UnitOfWork, r submission.Repository) *Usecase {
	return &Usecase{uow: u, repo: r}
}

// Submit validates the captured data against the template's field list
// and persists it unreviewed. The stored payload is the canonical
// serialized form, so nothing client-specific leaks into the column.
func (u *Usecase) Submit(ctx context.Context, templateID, authorID uint64, data json.RawMessage) (*submission.Submission, error) {
	var out *submission.Submission
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Templates.GetByID(ctx, templateID)
		if err != nil {
			return err
		}
		var fields []formengine.FieldSpec
		if err := json.Unmarshal(t.Structure, &fields); err != nil {
			return err
		}
		captured, err := formengine.Deserialize(data, fields)
		if err != nil {
			return err
		}
		if ferr := formengine.Validate(captured, fields); ferr != nil {
			return ferr
		}
		payload, err := formengine.Serialize(captured)
		if err != nil {
			return err
		}
		out = &submission.Submission{
			TemplateID: templateID,
			UserID:     authorID,
			Data:       datatypes.JSON(payload),
			Reviewed:   false,
		}
		return r.Submissions.Create(ctx, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListMine returns the author's own submissions, most recent first.
func (u *Usecase) ListMine(ctx context.Context, userID uint64) ([]submission.OwnItem, error) {
	return u.repo.ListByUser(ctx, userID)
}

func (u *Usecase) ListAll(ctx context.Context) ([]submission.Detail, error) {
	return u.repo.ListDetails(ctx, false)
}

func (u *Usecase) ListUnreviewed(ctx context.Context) ([]submission.Detail, error) {
	return u.repo.ListDetails(ctx, true)
}

// SetReviewed stamps the review triple when reviewed is true and clears
// it when false. Idempotent either direction.
func (u *Usecase) SetReviewed(ctx context.Context, submissionID, reviewerID uint64, reviewed bool) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Submissions.GetByID(ctx, submissionID); err != nil {
			return err
		}
		if reviewed {
			now := time.Now().UTC()
			return r.Submissions.SetReviewed(ctx, submissionID, &reviewerID, &now, true)
		}
		return r.Submissions.SetReviewed(ctx, submissionID, nil, nil, false)
	})
}

type DashboardStats struct {
	Submissions int64                  `json:"submissions"`
	Areas       int64                  `json:"areas"`
	Users       int64                  `json:"users"`
	ByArea      []submission.AreaCount `json:"by_area"`
	ByUser      []submission.UserCount `json:"by_user"`
}

func (u *Usecase) Stats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if out.Submissions, err = r.Submissions.CountAll(ctx); err != nil {
			return err
		}
		if out.Areas, err = r.Areas.Count(ctx); err != nil {
			return err
		}
		if out.Users, err = r.Users.Count(ctx); err != nil {
			return err
		}
		if out.ByArea, err = r.Submissions.CountByArea(ctx); err != nil {
			return err
		}
		out.ByUser, err = r.Submissions.CountByUser(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
