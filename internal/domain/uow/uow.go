package uow

import (
	"context"

	"github.com/cagb07/gestor-centros-app/internal/domain/area"
	"github.com/cagb07/gestor-centros-app/internal/domain/submission"
	"github.com/cagb07/gestor-centros-app/internal/domain/template"
	"github.com/cagb07/gestor-centros-app/internal/domain/user"
)

type Repos struct {
	Areas       area.Repository
	Users       user.Repository
	Templates   template.Repository
	Submissions submission.Repository
}

// UnitOfWork runs fn against repositories bound to one transaction;
// fn returning an error rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
