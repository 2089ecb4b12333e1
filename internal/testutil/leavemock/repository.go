package leavemock

import (
	"context"

	domain "nexhr-leave/internal/domain/leave"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to no-ops, reads default to context.Canceled.
type Repo struct {
	CreateFn           func(ctx context.Context, r *domain.Request) error
	SaveFn             func(ctx context.Context, r *domain.Request) error
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Request, error)
	GetByIDForUpdateFn func(ctx context.Context, id int64) (*domain.Request, error)
	ListFn             func(ctx context.Context) ([]domain.Request, error)
	ListByEmployeeFn   func(ctx context.Context, employeeID int64) ([]domain.Request, error)
	ListByStatusFn     func(ctx context.Context, status domain.Status) ([]domain.Request, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Request, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Request, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.Request, error) {
	if m.ListByEmployeeFn != nil {
		return m.ListByEmployeeFn(ctx, employeeID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Request, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, context.Canceled
}
