package employeemock

import (
	"context"

	domain "nexhr-leave/internal/domain/directory"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UpsertFn  func(ctx context.Context, e *domain.Employee) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Employee, error)
	ListFn    func(ctx context.Context) ([]domain.Employee, error)
	DeleteFn  func(ctx context.Context, id int64) error
	MaxIDFn   func(ctx context.Context) (int64, error)
}

func (m *Repo) Upsert(ctx context.Context, e *domain.Employee) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Employee, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return domain.ErrNotFound
}

func (m *Repo) MaxID(ctx context.Context) (int64, error) {
	if m.MaxIDFn != nil {
		return m.MaxIDFn(ctx)
	}
	return 0, nil
}
