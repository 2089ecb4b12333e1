package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ResolveEmployeeID returns the employee linked to the session: the session's own
// link first, then the stored user with the same username. A session without any
// link resolves to nil.
func ResolveEmployeeID(ctx context.Context, users Repository, who Identity) (*int64, error) {
	if who.EmployeeID != nil {
		return who.EmployeeID, nil
	}
	if who.Anonymous() || users == nil {
		return nil, nil
	}
	u, err := users.GetByUsername(ctx, who.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u.EmployeeID, nil
}
