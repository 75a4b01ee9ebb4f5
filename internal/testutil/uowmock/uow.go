package uowmock

import (
	"context"

	"github.com/cagb07/gestor-centros-app/internal/domain/uow"
)

// UoW satisfies uow.UnitOfWork for tests: WithinTx simply invokes fn
// with the configured repos, no transaction involved.
type UoW struct {
	Repos uow.Repos
}

func New(r uow.Repos) *UoW { return &UoW{Repos: r} }

func (u *UoW) WithinTx(_ context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}
