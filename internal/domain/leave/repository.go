package leave

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	Save(ctx context.Context, r *Request) error

	GetByID(ctx context.Context, id int64) (*Request, error)
	// Row-locking read for use inside a unit of work
	GetByIDForUpdate(ctx context.Context, id int64) (*Request, error)

	List(ctx context.Context) ([]Request, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]Request, error)
	ListByStatus(ctx context.Context, status Status) ([]Request, error)
}
