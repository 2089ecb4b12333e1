package uow

import (
	"context"

	"nexhr-leave/internal/domain/directory"
	"nexhr-leave/internal/domain/identity"
	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/settings"
)

type Repos struct {
	Leaves    leave.Repository
	Users     identity.Repository
	Employees directory.Repository
	Settings  settings.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the leave request first, then pass it in
	WithinLeaveTx(ctx context.Context, requestID int64, fn func(r Repos, l *leave.Request) error) error
}
