package identity

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	// Insert or update by username
	Upsert(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]User, error)
	// Delete returns ErrUserNotFound when no row matched
	Delete(ctx context.Context, username string) error
}
