package settings

import "context"

type Repository interface {
	// Get returns an empty Settings when nothing was saved yet.
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}
