package directory

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("employee not found")

type Repository interface {
	Upsert(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id int64) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Delete returns ErrNotFound when no row matched
	Delete(ctx context.Context, id int64) error
	// MaxID is 0 on an empty directory
	MaxID(ctx context.Context) (int64, error)
}
