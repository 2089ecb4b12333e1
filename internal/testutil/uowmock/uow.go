package uowmock

import (
	"context"
	"errors"

	"nexhr-leave/internal/domain/leave"
	"nexhr-leave/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLeaveTxFn func(ctx context.Context, requestID int64, fn func(r uow.Repos, l *leave.Request) error) error
}

func New() *UoW { return &UoW{} }

// Over builds a UoW that runs every body directly against repos, loading the leave
// request through repos.Leaves.GetByIDForUpdate the way the gorm one does.
func Over(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		},
		WithinLeaveTxFn: func(ctx context.Context, id int64, fn func(uow.Repos, *leave.Request) error) error {
			l, err := repos.Leaves.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, l)
		},
	}
}

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLeaveTx(fn func(context.Context, int64, func(uow.Repos, *leave.Request) error) error) *UoW {
	m.WithinLeaveTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLeaveTx(ctx context.Context, requestID int64, fn func(r uow.Repos, l *leave.Request) error) error {
	if m.WithinLeaveTxFn != nil {
		return m.WithinLeaveTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}
