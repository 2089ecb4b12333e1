package settingsmock

import (
	"context"

	domain "nexhr-leave/internal/domain/settings"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Get defaults to an empty settings row, like a fresh database.
type Repo struct {
	GetFn  func(ctx context.Context) (*domain.Settings, error)
	SaveFn func(ctx context.Context, s *domain.Settings) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return &domain.Settings{ID: domain.SingletonID}, nil
}

func (m *Repo) Save(ctx context.Context, s *domain.Settings) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}
